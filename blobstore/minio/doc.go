// Package minio stores word lists and index caches in MinIO or any other
// S3-compatible service, using the official MinIO client.
//
//	store, err := minio.New(minio.Config{
//	    Endpoint:  "localhost:9000",
//	    AccessKey: "minioadmin",
//	    SecretKey: "minioadmin",
//	    Bucket:    "wordsieve",
//	})
//
// NewStore wraps an already configured *minio.Client.
package minio
