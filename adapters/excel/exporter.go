// Package excel reads halo catalogs from and writes galaxy catalogs to
// spreadsheet and CSV files.
package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ShuleiCao/halotools/domain/halo"
	"github.com/ShuleiCao/halotools/internal"
	"github.com/ShuleiCao/halotools/ports"
)

const galaxySheet = "galaxies"

var galaxyHeader = []string{"halo_id", "halo_mvir", "stellar_mass", "quiescent", "x", "y", "z"}

// CatalogExporter writes galaxy catalogs to .xlsx or .csv files, chosen by
// the target path's extension.
type CatalogExporter struct {
	logger *internal.Logger
}

// NewCatalogExporter creates an exporter.
func NewCatalogExporter() *CatalogExporter {
	return &CatalogExporter{logger: internal.DefaultLogger.Named("excel")}
}

var _ ports.CatalogExporter = (*CatalogExporter)(nil)

// Export writes the catalog to path.
func (e *CatalogExporter) Export(ctx context.Context, catalog *halo.GalaxyCatalog, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ext := strings.ToLower(filepath.Ext(path))
	e.logger.Info("exporting %d galaxies to %s", catalog.Len(), path)
	switch ext {
	case ".csv":
		return e.exportCSV(catalog, path)
	case ".xlsx":
		return e.exportXLSX(catalog, path)
	default:
		return fmt.Errorf("unsupported export format %q", ext)
	}
}

func (e *CatalogExporter) exportCSV(catalog *halo.GalaxyCatalog, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(galaxyHeader); err != nil {
		return err
	}
	for _, g := range catalog.Galaxies {
		if err := w.Write(galaxyRecord(g)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (e *CatalogExporter) exportXLSX(catalog *halo.GalaxyCatalog, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(galaxySheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	header := make([]interface{}, len(galaxyHeader))
	for i, h := range galaxyHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(galaxySheet, "A1", &header); err != nil {
		return err
	}
	for i, g := range catalog.Galaxies {
		row := []interface{}{g.HaloID, g.HaloMvir, g.StellarMass, g.Quiescent, g.X, g.Y, g.Z}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(galaxySheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func galaxyRecord(g halo.Galaxy) []string {
	return []string{
		strconv.FormatInt(g.HaloID, 10),
		strconv.FormatFloat(g.HaloMvir, 'g', -1, 64),
		strconv.FormatFloat(g.StellarMass, 'g', -1, 64),
		strconv.FormatBool(g.Quiescent),
		strconv.FormatFloat(g.X, 'g', -1, 64),
		strconv.FormatFloat(g.Y, 'g', -1, 64),
		strconv.FormatFloat(g.Z, 'g', -1, 64),
	}
}
