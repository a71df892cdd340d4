package targz

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Pack writes a gzipped tarball holding the given files under their base names.
func Pack(output io.Writer, paths ...string) error {
	gzipWriter := gzip.NewWriter(output)
	tarWriter := tar.NewWriter(gzipWriter)

	for _, path := range paths {
		if err := addFile(tarWriter, path); err != nil {
			return err
		}
	}

	if err := tarWriter.Close(); err != nil {
		return errors.Wrap(err, "Failed to finish tar")
	}
	return errors.Wrap(gzipWriter.Close(), "Failed to finish gzip")
}

func addFile(tarWriter *tar.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "Failed to open %s", path)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return errors.Wrapf(err, "Failed to stat %s", path)
	}

	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return errors.Wrapf(err, "Failed to build header for %s", path)
	}
	header.Name = filepath.Base(path)

	if err := tarWriter.WriteHeader(header); err != nil {
		return errors.Wrapf(err, "Failed to write header for %s", path)
	}
	if _, err := io.Copy(tarWriter, file); err != nil {
		return errors.Wrapf(err, "Failed to write %s", path)
	}
	return nil
}
