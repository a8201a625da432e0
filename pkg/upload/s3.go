package upload

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Uploader implements the Uploader interface for any S3-compatible bucket.
type S3Uploader struct {
	s3     *s3.Client
	bucket string
}

// NewS3Uploader creates a new instance of S3Uploader.
func NewS3Uploader(cfg aws.Config, bucket string) *S3Uploader {
	return &S3Uploader{
		s3:     s3.NewFromConfig(cfg),
		bucket: bucket,
	}
}

// Upload sends the report content to the bucket under the target path.
func (u *S3Uploader) Upload(ctx context.Context, targetPath string, content []byte) error {
	size := int64(len(content))
	query := &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(targetPath),
		ACL:           types.ObjectCannedACLPrivate,
		Body:          bytes.NewReader(content),
		ContentLength: &size,
		ContentType:   aws.String(http.DetectContentType(content)),
	}

	if _, err := u.s3.PutObject(ctx, query); err != nil {
		return fmt.Errorf("can't send S3 PUT request: %w", err)
	}

	return nil
}

// URL returns the absolute path to the s3 object in the form s3://bucket/target/file.
func (u *S3Uploader) URL(targetPath string) string {
	return fmt.Sprintf("s3://%s/%s", u.bucket, targetPath)
}
