package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

// Decoder decodes yaml catalog documents into catalogs.
type Decoder struct{}

// Decode decodes single catalog document from r. Unknown fields are rejected.
func (d Decoder) Decode(r io.Reader) (*models.Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("can't decode catalog: %w", err)
	}

	return toAppCatalog(&doc), nil
}

// Default returns embedded demo store catalog.
func Default() (*models.Catalog, error) {
	return Decoder{}.Decode(bytes.NewReader(defaultCatalog))
}

// Load decodes catalog from file at path, or the default catalog when path is empty.
func Load(path string) (*models.Catalog, error) {
	if path == "" {
		return Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't open catalog file: %w", err)
	}
	defer f.Close()

	return Decoder{}.Decode(f)
}
