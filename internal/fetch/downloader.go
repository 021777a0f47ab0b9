package fetch

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/geoset/geoset/internal/config"
	"github.com/geoset/geoset/internal/errors"
	"github.com/geoset/geoset/internal/hashing"
	"github.com/geoset/geoset/internal/log"
	"github.com/geoset/geoset/internal/utils"
)

// DownloadURL fetches the i-th URL source of a list into the downloads
// cache. Returns (changed, error) where changed indicates whether the
// cached file was updated.
func DownloadURL(list *config.ListConfig, i int, cfg *config.Config) (bool, error) {
	src := list.URLs[i]

	if err := utils.EnsureDir(cfg.GetAbsDownloadsDir()); err != nil {
		return false, errors.NewDownloadError("failed to create downloads directory", err)
	}

	log.Infof("Downloading list \"%s\" source from URL: %s", list.Name, src.URL)

	client := &http.Client{}
	resp, err := client.Get(src.URL)
	if err != nil {
		return false, errors.NewDownloadError(fmt.Sprintf("failed to download list \"%s\"", list.Name), err)
	}
	defer utils.CloseOrWarn(resp.Body)
	bodyProxy := hashing.NewMD5ReaderProxy(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return false, errors.NewDownloadError(fmt.Sprintf("failed to download list \"%s\": %s", list.Name, resp.Status), nil)
	}

	content, err := io.ReadAll(bodyProxy)
	if err != nil {
		return false, errors.NewDownloadError(fmt.Sprintf("failed to read response for list \"%s\"", list.Name), err)
	}

	filePath := list.URLCachePath(cfg, i)

	if changed, err := hashing.IsFileChanged(bodyProxy, filePath); err != nil {
		log.Errorf("Failed to calculate list \"%s\" checksum: %v", list.Name, err)
	} else if !changed {
		log.Infof("List \"%s\" source %d is not changed, skipping write to disk", list.Name, i)
		return false, nil
	}

	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return false, errors.NewDownloadError(fmt.Sprintf("failed to write cache file to %s", filePath), err)
	}
	if err := hashing.WriteChecksum(bodyProxy, filePath); err != nil {
		return false, errors.NewDownloadError("failed to write cache checksum", err)
	}

	log.Infof("List \"%s\" source %d downloaded successfully", list.Name, i)
	return true, nil
}

// DownloadLists fetches every URL source of every configured list.
// Failures are logged and do not stop the remaining sources.
func DownloadLists(cfg *config.Config) error {
	for _, list := range cfg.Lists {
		for i := range list.URLs {
			if _, err := DownloadURL(list, i, cfg); err != nil {
				log.Errorf("Error downloading list \"%s\": %v", list.Name, err)
				continue
			}
		}
	}

	return nil
}
