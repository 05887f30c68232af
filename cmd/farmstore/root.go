package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agrigo/farmstore"
	"github.com/agrigo/farmstore/blobstore"
)

var (
	dataDir    string
	maxRecords int
	logLevel   string
	jsonLogs   bool
)

var rootCmd = &cobra.Command{
	Use:           "farmstore",
	Short:         "In-memory record manager for farm-production CSV data",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", ".", "directory holding datasets and exports")
	rootCmd.PersistentFlags().IntVar(&maxRecords, "max-records", farmstore.DefaultMaxRecords, "record load cap (0 = unlimited)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "emit JSON-formatted logs")

	rootCmd.AddCommand(runCmd, queryCmd, topCmd, backupCmd)
}

func newLogger() (*farmstore.Logger, error) {
	var level slog.Level
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", logLevel)
	}

	if jsonLogs {
		return farmstore.NewJSONLogger(level), nil
	}
	return farmstore.NewTextLogger(level), nil
}

func newStore() (*farmstore.Store, blobstore.Store, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, nil, err
	}

	bs := blobstore.NewLocalStore(dataDir)
	store := farmstore.New(
		farmstore.WithLogger(logger),
		farmstore.WithBlobStore(bs),
		farmstore.WithMaxRecords(maxRecords),
	)
	return store, bs, nil
}
