package utils

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

func CreateDirIfNeededForFile(fpath string) error {
	if err := os.MkdirAll(filepath.Dir(fpath), 0777); err != nil {
		return errors.Wrapf(err, "Unable to create directory for %q", fpath)
	}
	return nil
}

func WriteBinaryFile(fpath string, data []byte) error {
	if err := CreateDirIfNeededForFile(fpath); err != nil {
		return err
	}
	if err := os.WriteFile(fpath, data, 0666); err != nil {
		return errors.Wrapf(err, "Unable to write %q", fpath)
	}
	return nil
}
