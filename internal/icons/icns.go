package icons

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/jackmordaunt/icns/v3"
)

// ErrICNSUnsupported reports that the ICNS encoder cannot handle the
// source. Callers treat this kind as non-fatal; any other failure from
// WriteICNS propagates.
var ErrICNSUnsupported = errors.New("icns encoding unsupported")

// icnsEncode is swapped out in tests.
var icnsEncode = func(w io.Writer, img image.Image) error {
	return icns.Encode(w, img)
}

// WriteICNS encodes the full-resolution source into the macOS icon
// bundle at path. When the encoder reports the source as unsupported
// the partial file is removed and the returned error wraps
// ErrICNSUnsupported.
func WriteICNS(src image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := icnsEncode(f, src); err != nil {
		f.Close()
		os.Remove(path)
		if unsupportedICNS(err) {
			return fmt.Errorf("%w: %v", ErrICNSUnsupported, err)
		}
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

func unsupportedICNS(err error) bool {
	if errors.Is(err, ErrICNSUnsupported) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "unsupported") || strings.Contains(msg, "too small")
}
