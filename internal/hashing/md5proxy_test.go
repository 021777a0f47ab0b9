package hashing

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"testing"
)

type errorReader struct {
	err error
}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, e.err
}

func TestNewMD5ReaderProxy(t *testing.T) {
	reader := strings.NewReader("test data")
	proxy := NewMD5ReaderProxy(reader)

	if proxy == nil {
		t.Error("Expected proxy to be non-nil")
	}

	if proxy.reader != reader {
		t.Error("Expected reader to be set correctly")
	}

	if proxy.checksum == nil {
		t.Error("Expected checksum to be initialized")
	}
}

func TestChecksumReaderProxy_ReadAll(t *testing.T) {
	testData := "hello world"
	reader := strings.NewReader(testData)
	proxy := NewMD5ReaderProxy(reader)

	allData, err := io.ReadAll(proxy)
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if string(allData) != testData {
		t.Errorf("Expected '%s', got '%s'", testData, string(allData))
	}
}

func TestChecksumReaderProxy_ReadError(t *testing.T) {
	expectedErr := errors.New("read error")
	reader := &errorReader{err: expectedErr}
	proxy := NewMD5ReaderProxy(reader)

	buf := make([]byte, 10)
	_, err := proxy.Read(buf)

	if err != expectedErr {
		t.Errorf("Expected error %v, got %v", expectedErr, err)
	}
}

func TestChecksumReaderProxy_GetChecksum(t *testing.T) {
	testData := "hello world"
	reader := strings.NewReader(testData)
	proxy := NewMD5ReaderProxy(reader)

	// Read all data
	_, err := io.ReadAll(proxy)
	if err != nil {
		t.Fatalf("Failed to read data: %v", err)
	}

	checksum, err := proxy.GetChecksum()
	if err != nil {
		t.Errorf("Unexpected error getting checksum: %v", err)
	}

	// Calculate expected checksum
	hasher := md5.New()
	hasher.Write([]byte(testData))
	expected := hex.EncodeToString(hasher.Sum(nil))

	if checksum != expected {
		t.Errorf("Expected checksum %s, got %s", expected, checksum)
	}
}

func TestChecksumReaderProxy_GetChecksumEmpty(t *testing.T) {
	reader := strings.NewReader("")
	proxy := NewMD5ReaderProxy(reader)

	// Read all data (empty)
	_, err := io.ReadAll(proxy)
	if err != nil {
		t.Fatalf("Failed to read data: %v", err)
	}

	checksum, err := proxy.GetChecksum()
	if err != nil {
		t.Errorf("Unexpected error getting checksum: %v", err)
	}

	// MD5 of empty string
	expected := "d41d8cd98f00b204e9800998ecf8427e"

	if checksum != expected {
		t.Errorf("Expected checksum %s, got %s", expected, checksum)
	}
}

func TestBytesChecksum_MatchesReaderProxy(t *testing.T) {
	data := []byte("the same artifact bytes")

	proxy := NewMD5ReaderProxy(strings.NewReader(string(data)))
	if _, err := io.ReadAll(proxy); err != nil {
		t.Fatalf("Failed to read data: %v", err)
	}

	fromReader, err := proxy.GetChecksum()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	fromBytes, err := BytesChecksum(data).GetChecksum()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if fromReader != fromBytes {
		t.Errorf("BytesChecksum = %s, reader proxy = %s", fromBytes, fromReader)
	}
}
