// Package imaging loads image attachments from disk for doubt
// submissions.
package imaging

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/abhisek/doubtbox/internal/llm"
)

// MaxBytes caps attachment size. Provider APIs reject large images and
// base64 expansion makes them ~33% bigger on the wire.
const MaxBytes = 5 << 20

// ErrTooLarge is returned when the file exceeds MaxBytes.
var ErrTooLarge = errors.New("image exceeds 5 MB limit")

// ErrUnsupportedType is returned when the file is not a supported image
// format.
var ErrUnsupportedType = errors.New("unsupported image type")

var supported = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Load reads the image at path and returns it as an attachment, sniffing
// the MIME type from content rather than trusting the extension.
func Load(path string) (*llm.ImageAttachment, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat image: %w", err)
	}
	if info.Size() > MaxBytes {
		return nil, fmt.Errorf("%s: %w", path, ErrTooLarge)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	mime := http.DetectContentType(data)
	// DetectContentType can't distinguish some webp variants; fall back
	// to the extension for those.
	if !supported[mime] && strings.HasSuffix(strings.ToLower(path), ".webp") {
		mime = "image/webp"
	}
	if !supported[mime] {
		return nil, fmt.Errorf("%s (%s): %w", path, mime, ErrUnsupportedType)
	}

	return &llm.ImageAttachment{MIMEType: mime, Data: data}, nil
}
