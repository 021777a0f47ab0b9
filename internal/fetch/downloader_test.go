package fetch

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/geoset/geoset/internal/config"
)

func TestDownloadLists_EmptyConfig(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := &config.Config{
		General: &config.GeneralConfig{
			DataDir:      tmpDir,
			OutputDir:    tmpDir,
			DownloadsDir: tmpDir,
		},
		Lists: []*config.ListConfig{},
	}

	err := DownloadLists(cfg)
	if err != nil {
		t.Errorf("Expected no error for empty config, got: %v", err)
	}
}

func TestDownloadLists_NoURLSources(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := &config.Config{
		General: &config.GeneralConfig{
			DataDir:      tmpDir,
			OutputDir:    tmpDir,
			DownloadsDir: tmpDir,
		},
		Lists: []*config.ListConfig{
			{
				Name:    "inline_list",
				Entries: []string{"example.com"},
			},
		},
	}

	err := DownloadLists(cfg)
	if err != nil {
		t.Errorf("Expected no error for lists without URL sources, got: %v", err)
	}
}

func TestDownloadLists_SuccessfulDownload(t *testing.T) {
	tmpDir := t.TempDir()

	testContent := "example.com\ntest.org\n"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(testContent))
	}))
	defer server.Close()

	cfg := &config.Config{
		General: &config.GeneralConfig{
			DataDir:      tmpDir,
			OutputDir:    tmpDir,
			DownloadsDir: tmpDir,
		},
		Lists: []*config.ListConfig{
			{
				Name: "test_list",
				URLs: []*config.URLSource{{URL: server.URL}},
			},
		},
	}

	err := DownloadLists(cfg)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	expectedPath := filepath.Join(tmpDir, "test_list-0.lst")
	content, err := os.ReadFile(expectedPath)
	if err != nil {
		t.Fatalf("Failed to read downloaded file: %v", err)
	}

	if string(content) != testContent {
		t.Errorf("Expected content '%s', got '%s'", testContent, string(content))
	}

	checksumPath := expectedPath + ".md5"
	if _, err := os.Stat(checksumPath); os.IsNotExist(err) {
		t.Error("Expected checksum file to be created")
	}
}

func TestDownloadLists_HTTPError(t *testing.T) {
	tmpDir := t.TempDir()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Server Error"))
	}))
	defer server.Close()

	cfg := &config.Config{
		General: &config.GeneralConfig{
			DataDir:      tmpDir,
			OutputDir:    tmpDir,
			DownloadsDir: tmpDir,
		},
		Lists: []*config.ListConfig{
			{
				Name: "test_list",
				URLs: []*config.URLSource{{URL: server.URL}},
			},
		},
	}

	err := DownloadLists(cfg)
	// Should not error - it continues on HTTP errors
	if err != nil {
		t.Errorf("Expected no error (should continue on HTTP errors), got: %v", err)
	}

	expectedPath := filepath.Join(tmpDir, "test_list-0.lst")
	if _, err := os.Stat(expectedPath); !os.IsNotExist(err) {
		t.Error("Expected file not to be created on HTTP error")
	}
}

func TestDownloadLists_NetworkError(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := &config.Config{
		General: &config.GeneralConfig{
			DataDir:      tmpDir,
			OutputDir:    tmpDir,
			DownloadsDir: tmpDir,
		},
		Lists: []*config.ListConfig{
			{
				Name: "test_list",
				URLs: []*config.URLSource{{URL: "http://nonexistent.invalid/list.txt"}},
			},
		},
	}

	err := DownloadLists(cfg)
	// Should not error - it continues on network errors
	if err != nil {
		t.Errorf("Expected no error (should continue on network errors), got: %v", err)
	}
}

func TestDownloadURL_SkipsUnchanged(t *testing.T) {
	tmpDir := t.TempDir()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("example.com\ntest.org\n"))
	}))
	defer server.Close()

	cfg := &config.Config{
		General: &config.GeneralConfig{
			DataDir:      tmpDir,
			OutputDir:    tmpDir,
			DownloadsDir: tmpDir,
		},
		Lists: []*config.ListConfig{
			{
				Name: "test_list",
				URLs: []*config.URLSource{{URL: server.URL}},
			},
		},
	}

	changed, err := DownloadURL(cfg.Lists[0], 0, cfg)
	if err != nil {
		t.Fatalf("First download failed: %v", err)
	}
	if !changed {
		t.Error("Expected first download to report the file as changed")
	}

	changed, err = DownloadURL(cfg.Lists[0], 0, cfg)
	if err != nil {
		t.Fatalf("Second download failed: %v", err)
	}
	if changed {
		t.Error("Expected second download of identical content to be skipped")
	}
}

func TestDownloadLists_MultipleListsPartialFailure(t *testing.T) {
	tmpDir := t.TempDir()

	successServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success.com\n"))
	}))
	defer successServer.Close()

	failServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Not Found"))
	}))
	defer failServer.Close()

	cfg := &config.Config{
		General: &config.GeneralConfig{
			DataDir:      tmpDir,
			OutputDir:    tmpDir,
			DownloadsDir: tmpDir,
		},
		Lists: []*config.ListConfig{
			{
				Name: "success_list",
				URLs: []*config.URLSource{{URL: successServer.URL}},
			},
			{
				Name: "fail_list",
				URLs: []*config.URLSource{{URL: failServer.URL}},
			},
		},
	}

	err := DownloadLists(cfg)
	if err != nil {
		t.Errorf("Expected no error (should continue on partial failures), got: %v", err)
	}

	successPath := filepath.Join(tmpDir, "success_list-0.lst")
	if _, err := os.Stat(successPath); os.IsNotExist(err) {
		t.Error("Expected successful list to be downloaded")
	}

	failPath := filepath.Join(tmpDir, "fail_list-0.lst")
	if _, err := os.Stat(failPath); !os.IsNotExist(err) {
		t.Error("Expected failed list not to create file")
	}
}
