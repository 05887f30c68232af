package main

import (
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/cobra"

	"github.com/agrigo/farmstore/blobstore"
	minioblob "github.com/agrigo/farmstore/blobstore/minio"
	s3blob "github.com/agrigo/farmstore/blobstore/s3"
)

var (
	backupTarget      string
	backupBucket      string
	backupPrefix      string
	backupLocalPrefix string
	backupEndpoint    string
	backupAccessKey   string
	backupSecretKey   string
	backupInsecure    bool
	backupConcurrency int
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Mirror local datasets and exports to object storage",
	Example: `  farmstore backup --target s3 --bucket farm-archive --prefix weekly/
  farmstore backup --target minio --bucket farm-archive --endpoint localhost:9000 \
      --access-key minioadmin --secret-key minioadmin --insecure`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var dst blobstore.Store
		switch backupTarget {
		case "s3":
			store, err := s3blob.NewStoreFromDefaultConfig(ctx, backupBucket, backupPrefix)
			if err != nil {
				return fmt.Errorf("configure s3: %w", err)
			}
			dst = store
		case "minio":
			client, err := minio.New(backupEndpoint, &minio.Options{
				Creds:  credentials.NewStaticV4(backupAccessKey, backupSecretKey, ""),
				Secure: !backupInsecure,
			})
			if err != nil {
				return fmt.Errorf("configure minio: %w", err)
			}
			dst = minioblob.NewStore(client, backupBucket, backupPrefix)
		default:
			return fmt.Errorf("unknown backup target %q: want s3 or minio", backupTarget)
		}

		src := blobstore.NewLocalStore(dataDir)

		names, err := src.List(ctx, backupLocalPrefix)
		if err != nil {
			return fmt.Errorf("list %s: %w", dataDir, err)
		}
		if len(names) == 0 {
			fmt.Println("Nothing to back up")
			return nil
		}

		if err := blobstore.Mirror(ctx, src, dst, names, backupConcurrency); err != nil {
			return fmt.Errorf("mirror: %w", err)
		}

		fmt.Printf("Backed up %d blob(s) to %s bucket %s\n", len(names), backupTarget, backupBucket)
		return nil
	},
}

func init() {
	backupCmd.Flags().StringVar(&backupTarget, "target", "s3", "backup destination: s3 or minio")
	backupCmd.Flags().StringVar(&backupBucket, "bucket", "", "destination bucket (required)")
	backupCmd.Flags().StringVar(&backupPrefix, "prefix", "", "key prefix inside the bucket")
	backupCmd.Flags().StringVar(&backupLocalPrefix, "local-prefix", "", "only back up local blobs with this prefix")
	backupCmd.Flags().StringVar(&backupEndpoint, "endpoint", "", "minio endpoint host:port")
	backupCmd.Flags().StringVar(&backupAccessKey, "access-key", "", "minio access key")
	backupCmd.Flags().StringVar(&backupSecretKey, "secret-key", "", "minio secret key")
	backupCmd.Flags().BoolVar(&backupInsecure, "insecure", false, "use plain HTTP for minio")
	backupCmd.Flags().IntVar(&backupConcurrency, "concurrency", 4, "parallel uploads")

	_ = backupCmd.MarkFlagRequired("bucket")
}
