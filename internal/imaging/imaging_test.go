package imaging

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// pngHeader is the 8-byte PNG signature plus enough bytes for content
// sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadPNG(t *testing.T) {
	path := writeTemp(t, "problem.png", pngHeader)

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.MIMEType != "image/png" {
		t.Errorf("MIMEType = %q, want image/png", img.MIMEType)
	}
	if len(img.Data) != len(pngHeader) {
		t.Errorf("data length = %d, want %d", len(img.Data), len(pngHeader))
	}
}

func TestLoadSniffsContentNotExtension(t *testing.T) {
	// PNG bytes behind a .jpg name; content wins.
	path := writeTemp(t, "mislabeled.jpg", pngHeader)

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.MIMEType != "image/png" {
		t.Errorf("MIMEType = %q, want image/png", img.MIMEType)
	}
}

func TestLoadRejectsNonImage(t *testing.T) {
	path := writeTemp(t, "notes.txt", []byte("this is plain text, not an image"))

	_, err := Load(path)
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}
