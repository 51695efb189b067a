package icons

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/Roxlit/installer/internal/config"
	"github.com/Roxlit/installer/internal/ui"
)

// ErrSourceNotFound reports that the source logo is missing; nothing is
// written in that case.
var ErrSourceNotFound = errors.New("source image not found")

// LoadSource decodes the logo at path and normalizes it to NRGBA.
func LoadSource(path string) (*image.NRGBA, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, err
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return imaging.Clone(img), nil
}

// Resize scales src to a square of the given edge length with Lanczos
// resampling. Transparency is preserved.
func Resize(src image.Image, edge int) *image.NRGBA {
	return imaging.Resize(src, edge, edge, imaging.Lanczos)
}

// WritePNGSet emits one standalone PNG per config.PNGSizes entry into
// dir, smallest first.
func WritePNGSet(src image.Image, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	names := make([]string, 0, len(config.PNGSizes))
	for name := range config.PNGSizes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return config.PNGSizes[names[i]] < config.PNGSizes[names[j]]
	})
	for _, name := range names {
		size := config.PNGSizes[name]
		if err := imaging.Save(Resize(src, size), filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		ui.Item(fmt.Sprintf("%s (%dx%d)", name, size, size))
	}
	return nil
}

// WriteFrontendIcon emits the 256px copy used by the frontend asset
// pipeline, creating parent directories as needed.
func WriteFrontendIcon(src image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	size := config.FrontendIconSize
	if err := imaging.Save(Resize(src, size), path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Generate runs the whole batch from layout.Source: the bundle PNG set,
// the frontend asset, the ICO container and a best-effort ICNS bundle.
// Every step is fail-fast except ICNS, which only warns when the
// encoder cannot handle the source.
func Generate(layout config.Layout) error {
	src, err := LoadSource(layout.Source)
	if err != nil {
		return err
	}
	b := src.Bounds()
	ui.Info(fmt.Sprintf("Source: %s (%dx%d)", layout.Source, b.Dx(), b.Dy()))

	if err := WritePNGSet(src, layout.TauriIconsDir); err != nil {
		return err
	}

	if err := WriteFrontendIcon(src, layout.FrontendIcon); err != nil {
		return err
	}
	ui.Item(fmt.Sprintf("%s (%dx%d)", layout.FrontendIcon, config.FrontendIconSize, config.FrontendIconSize))

	if err := WriteICO(src, layout.ICOPath()); err != nil {
		return err
	}
	ui.Item(fmt.Sprintf("icon.ico (%s)", sizeList(config.ICOSizes)))

	if err := WriteICNS(src, layout.ICNSPath()); err != nil {
		if !errors.Is(err, ErrICNSUnsupported) {
			return err
		}
		ui.Warning("cannot generate icon.icns: " + err.Error())
	} else {
		ui.Item("icon.icns")
	}

	return nil
}

func sizeList(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ", ")
}
