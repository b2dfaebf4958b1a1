package minio

import (
	miniogo "github.com/minio/minio-go/v7"
)

// MinIOConfig holds configuration for the MinIO client.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// minioImpl implements MinIO.
type minioImpl struct {
	client *miniogo.Client
	bucket string
	region string
}
