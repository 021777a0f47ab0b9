package hashing

import (
	"errors"
	"io"
	"os"

	"github.com/geoset/geoset/internal/log"
	"github.com/geoset/geoset/internal/utils"
)

// IsFileChanged compares the provider's checksum against the ".md5"
// sidecar of filePath. A missing file or unreadable sidecar counts as
// changed.
func IsFileChanged(checksumProxy ChecksumProvider, filePath string) (bool, error) {
	if _, err := os.Stat(filePath); errors.Is(err, os.ErrNotExist) {
		return true, nil
	}

	if md5, err := checksumProxy.GetChecksum(); err != nil {
		return false, err
	} else {
		checksumFilePath := filePath + ".md5"
		checksum, err := readChecksum(checksumFilePath)
		if err != nil {
			log.Debugf("Failed to read checksum file '%s', assuming it's changed: %v", checksumFilePath, err)
			return true, nil
		}
		return string(checksum) != md5, nil
	}
}

func readChecksum(checksumFilePath string) ([]byte, error) {
	if checksumFile, err := os.Open(checksumFilePath); err != nil {
		return nil, err
	} else {
		defer utils.CloseOrWarn(checksumFile)

		return io.ReadAll(checksumFile)
	}
}

// WriteChecksum writes the provider's checksum into the ".md5" sidecar
// of filePath.
func WriteChecksum(checksumProxy ChecksumProvider, filePath string) error {
	checksumFilePath := filePath + ".md5"
	if checksum, err := checksumProxy.GetChecksum(); err != nil {
		return err
	} else {
		return os.WriteFile(checksumFilePath, []byte(checksum), 0644)
	}
}
