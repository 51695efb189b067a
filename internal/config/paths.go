package config

import "path/filepath"

// Project Structure:
// Root/
//  ├── logo.png          (source of truth, 1024x1024 RGBA)
//  ├── src/assets/       (frontend assets)
//  └── src-tauri/icons/  (bundle icons: PNG set, icon.ico, icon.icns)

const (
	SourceName = "logo.png"

	// Edge length of the icon copied into the frontend asset tree.
	FrontendIconSize = 256
)

// PNGSizes maps each bundle icon filename to its square edge length.
var PNGSizes = map[string]int{
	"32x32.png":      32,
	"128x128.png":    128,
	"128x128@2x.png": 256,
	"icon.png":       512,
}

// ICOSizes lists the variants embedded in icon.ico, smallest first.
var ICOSizes = []int{16, 24, 32, 48, 64, 128, 256}

// Layout holds the three filesystem locations the generator touches.
// Tests point these at a temp dir; the tool itself runs from the
// project root with DefaultLayout.
type Layout struct {
	Source        string
	TauriIconsDir string
	FrontendIcon  string
}

func DefaultLayout() Layout {
	return Layout{
		Source:        SourceName,
		TauriIconsDir: filepath.Join("src-tauri", "icons"),
		FrontendIcon:  filepath.Join("src", "assets", "icon.png"),
	}
}

func (l Layout) ICOPath() string {
	return filepath.Join(l.TauriIconsDir, "icon.ico")
}

func (l Layout) ICNSPath() string {
	return filepath.Join(l.TauriIconsDir, "icon.icns")
}
