// Package upload pushes rendered JUnit reports to a remote artifact store.
package upload

import "context"

// Uploader abstracts storage services such as AWS S3, GCS, etc...
type Uploader interface {
	Upload(ctx context.Context, targetPath string, content []byte) error
	URL(targetPath string) string
}
