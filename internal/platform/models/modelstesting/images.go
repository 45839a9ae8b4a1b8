package modelstesting

import (
	"testing/fstest"

	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
)

// PNGImage is minimal png header recognized as image/png.
var PNGImage = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

// Images returns images directory with png file for every local catalog asset.
func Images(catalog *models.Catalog) fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, a := range catalog.Assets() {
		if a.Path != "" {
			fsys[a.Path] = &fstest.MapFile{Data: PNGImage}
		}
	}

	return fsys
}
