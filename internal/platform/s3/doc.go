// Package s3 archives purge reports to S3-compatible object storage.
//
// OpenStack clouds usually expose an S3 API next to Swift (RadosGW or the
// swift3 middleware) and hand out EC2 credentials for it, so the client
// defaults to path-style addressing. Reports land under
// <prefix>/<project>/<timestamp>.json in the bucket named by an
// s3://bucket/prefix location.
package s3
