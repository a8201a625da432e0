package upload_test

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/mjunit/mjunit/pkg/upload"
	"github.com/stretchr/testify/assert"
)

func TestS3Uploader_URL(t *testing.T) {
	t.Parallel()

	uploader := upload.NewS3Uploader(aws.Config{}, "ci-artifacts")
	assert.Equal(t, "s3://ci-artifacts/junit/test-results.xml", uploader.URL("junit/test-results.xml"))
}
