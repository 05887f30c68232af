package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agrigo/farmstore/rank"
	"github.com/agrigo/farmstore/record"
)

var (
	topDataset string
	topField   string
	topN       int
	topDesc    bool
	topExport  string
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the top N records of a dataset ordered by a column",
	Example: `  farmstore top --dataset potatoes.csv --field value --n 5 --desc
  farmstore top --dataset potatoes.csv --field ref_date --n 10 --export oldest.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := newStore()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if err := store.LoadCSV(ctx, topDataset); err != nil {
			return fmt.Errorf("load %s: %w", topDataset, err)
		}

		results, err := store.TopN(rank.TopNSpec{
			N: topN,
			SortSpec: rank.SortSpec{
				Field:     record.Field(topField),
				Ascending: !topDesc,
			},
		})
		if err != nil {
			return err
		}

		renderRecords(os.Stdout, results)

		if topExport != "" {
			if err := store.ExportCSV(ctx, topExport, results); err != nil {
				return fmt.Errorf("export %s: %w", topExport, err)
			}
			fmt.Printf("Exported %d record(s) to %s\n", len(results), topExport)
		}
		return nil
	},
}

func init() {
	topCmd.Flags().StringVar(&topDataset, "dataset", "", "dataset to load (required)")
	topCmd.Flags().StringVar(&topField, "field", string(record.FieldValue), "column to order by")
	topCmd.Flags().IntVar(&topN, "n", 10, "number of records to keep")
	topCmd.Flags().BoolVar(&topDesc, "desc", false, "order descending (largest first)")
	topCmd.Flags().StringVar(&topExport, "export", "", "write the results to this blob (.gz compresses)")

	_ = topCmd.MarkFlagRequired("dataset")
}
