// Package storage provides the S3-compatible archive for generated report
// PDFs. The database record is the source of truth; the archive holds a
// plain-bytes copy for bulk export and disaster recovery.
package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const contentTypePDF = "application/pdf"

// Config defines the configuration interface for the archive.
type Config interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	IsMinIOEnabled() bool
}

// PDFArchive stores report PDFs in a MinIO bucket.
type PDFArchive struct {
	client *minio.Client
	bucket string
}

// NewPDFArchive creates the archive client for the given bucket.
func NewPDFArchive(cfg Config, bucket string) (*PDFArchive, error) {
	if !cfg.IsMinIOEnabled() {
		return nil, fmt.Errorf("MinIO is not configured")
	}

	client, err := minio.New(cfg.GetMinIOEndpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.GetMinIOAccessKey(), cfg.GetMinIOSecretKey(), ""),
		Secure: cfg.GetMinIOUseSSL(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &PDFArchive{client: client, bucket: bucket}, nil
}

// EnsureBucket creates the archive bucket if it doesn't exist.
func (a *PDFArchive) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
		}
	}
	return nil
}

// StoreReportPDF writes one report's bytes under the given object name.
func (a *PDFArchive) StoreReportPDF(ctx context.Context, objectName string, data []byte) error {
	_, err := a.client.PutObject(ctx, a.bucket, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentTypePDF})
	if err != nil {
		return fmt.Errorf("failed to archive %s: %w", objectName, err)
	}
	return nil
}

// DeleteReportPDF removes an archived report, called when the owner deletes
// the record.
func (a *PDFArchive) DeleteReportPDF(ctx context.Context, objectName string) error {
	if err := a.client.RemoveObject(ctx, a.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete archived report %s: %w", objectName, err)
	}
	return nil
}
