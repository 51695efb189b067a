package icons

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	ico "github.com/sergeymakinen/go-ico"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roxlit/installer/internal/config"
)

func decodeICO(t *testing.T, path string) []image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	imgs, err := ico.DecodeAll(f)
	require.NoError(t, err)
	return imgs
}

func TestWriteICOEmbedsAllSizes(t *testing.T) {
	src := testLogo(512)
	path := filepath.Join(t.TempDir(), "icon.ico")
	require.NoError(t, WriteICO(src, path))

	imgs := decodeICO(t, path)
	require.Len(t, imgs, len(config.ICOSizes))
	for i, size := range config.ICOSizes {
		assert.Equal(t, size, imgs[i].Bounds().Dx(), "entry %d width", i)
		assert.Equal(t, size, imgs[i].Bounds().Dy(), "entry %d height", i)
	}
}

func TestWriteICOMatchesStandaloneResize(t *testing.T) {
	src := testLogo(512)
	path := filepath.Join(t.TempDir(), "icon.ico")
	require.NoError(t, WriteICO(src, path))

	imgs := decodeICO(t, path)
	require.Len(t, imgs, len(config.ICOSizes))
	for i, size := range config.ICOSizes {
		want := Resize(src, size)
		got := imgs[i]

		// Sample one opaque and one transparent point per entry.
		points := []image.Point{
			{X: size / 8, Y: size / 2},
			{X: size - 2, Y: size / 2},
		}
		for _, p := range points {
			wr, wg, wb, wa := want.At(p.X, p.Y).RGBA()
			gr, gg, gb, ga := got.At(p.X, p.Y).RGBA()
			assert.Equal(t, []uint32{wr, wg, wb, wa}, []uint32{gr, gg, gb, ga},
				"entry %d pixel %v", i, p)
		}
	}
}
