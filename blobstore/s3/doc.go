// Package s3 provides an Amazon S3 backed blobstore.Store.
//
// Reads use GetObject; writes stream through the s3 upload manager so large
// exports do not need to fit a single PutObject request body.
package s3
