// Package minio provides a MinIO / S3-compatible blobstore.Store.
//
// Use this backend for self-hosted object storage or any service speaking
// the S3 protocol that is not AWS itself.
package minio
