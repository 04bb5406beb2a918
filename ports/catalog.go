package ports

import (
	"context"

	"github.com/ShuleiCao/halotools/domain/halo"
)

// CatalogSource loads a halo catalog snapshot into memory.
type CatalogSource interface {
	Load(ctx context.Context) (*halo.Catalog, error)
}

// CatalogExporter writes a populated galaxy catalog to an external sink.
type CatalogExporter interface {
	Export(ctx context.Context, catalog *halo.GalaxyCatalog, path string) error
}
