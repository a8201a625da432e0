// Package archive bundles generated report files into a single artifact,
// the form most CI systems collect.
package archive

import (
	"compress/gzip"
	"fmt"

	"github.com/mholt/archiver/v3"
)

// Create builds a tar.gz archive at destPath containing the given files.
// An existing archive at the destination is overwritten.
func Create(files []string, destPath string) error {
	tarGzArchiver := archiver.TarGz{
		Tar: &archiver.Tar{
			OverwriteExisting:      true,
			MkdirAll:               true,
			ImplicitTopLevelFolder: false,
			ContinueOnError:        false,
		},
		CompressionLevel: gzip.BestCompression,
	}

	if err := tarGzArchiver.Archive(files, destPath); err != nil {
		return fmt.Errorf("can't create tar archive %s: %w", destPath, err)
	}

	return nil
}
