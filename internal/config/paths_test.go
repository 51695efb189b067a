package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()
	assert.Equal(t, "logo.png", l.Source)
	assert.Equal(t, filepath.Join("src-tauri", "icons"), l.TauriIconsDir)
	assert.Equal(t, filepath.Join("src", "assets", "icon.png"), l.FrontendIcon)
	assert.Equal(t, filepath.Join("src-tauri", "icons", "icon.ico"), l.ICOPath())
	assert.Equal(t, filepath.Join("src-tauri", "icons", "icon.icns"), l.ICNSPath())
}

func TestSizeTables(t *testing.T) {
	assert.Equal(t, map[string]int{
		"32x32.png":      32,
		"128x128.png":    128,
		"128x128@2x.png": 256,
		"icon.png":       512,
	}, PNGSizes)

	assert.Equal(t, []int{16, 24, 32, 48, 64, 128, 256}, ICOSizes)
	assert.Equal(t, 256, FrontendIconSize)
}
