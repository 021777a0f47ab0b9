package hashing

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsFileChanged_MissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing.json")

	changed, err := IsFileChanged(BytesChecksum("data"), path)
	if err != nil {
		t.Fatalf("IsFileChanged() error = %v", err)
	}
	if !changed {
		t.Error("Expected missing file to count as changed")
	}
}

func TestIsFileChanged_MissingSidecar(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "artifact.json")
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	changed, err := IsFileChanged(BytesChecksum("data"), path)
	if err != nil {
		t.Fatalf("IsFileChanged() error = %v", err)
	}
	if !changed {
		t.Error("Expected missing sidecar to count as changed")
	}
}

func TestWriteChecksumThenUnchanged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "artifact.json")
	data := []byte("artifact content")

	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := WriteChecksum(BytesChecksum(data), path); err != nil {
		t.Fatalf("WriteChecksum() error = %v", err)
	}

	changed, err := IsFileChanged(BytesChecksum(data), path)
	if err != nil {
		t.Fatalf("IsFileChanged() error = %v", err)
	}
	if changed {
		t.Error("Expected identical content to count as unchanged")
	}

	changed, err = IsFileChanged(BytesChecksum("different content"), path)
	if err != nil {
		t.Fatalf("IsFileChanged() error = %v", err)
	}
	if !changed {
		t.Error("Expected different content to count as changed")
	}
}
