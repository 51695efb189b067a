package icons

import (
	"fmt"
	"image"
	"os"

	ico "github.com/sergeymakinen/go-ico"

	"github.com/Roxlit/installer/internal/config"
)

// WriteICO encodes one resized variant per config.ICOSizes entry into a
// single multi-resolution container at path.
func WriteICO(src image.Image, path string) error {
	variants := make([]image.Image, 0, len(config.ICOSizes))
	for _, size := range config.ICOSizes {
		variants = append(variants, Resize(src, size))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := ico.EncodeAll(f, variants); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
