package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ShuleiCao/halotools/domain/core"
	"github.com/ShuleiCao/halotools/domain/halo"
	"github.com/ShuleiCao/halotools/internal"
	"github.com/ShuleiCao/halotools/ports"
)

// CatalogReader loads halo catalog snapshots from .xlsx or .csv files.
// The first row must be a header naming at least halo_id and halo_mvir;
// halo_vmax, halo_nfw_conc, halo_zhalf, x, y and z are optional.
type CatalogReader struct {
	path     string
	simName  string
	redshift float64
	lbox     float64
	logger   *internal.Logger
}

// NewCatalogReader creates a reader for the snapshot file at path.
func NewCatalogReader(path, simName string, redshift, lbox float64) *CatalogReader {
	return &CatalogReader{
		path:     path,
		simName:  simName,
		redshift: redshift,
		lbox:     lbox,
		logger:   internal.DefaultLogger.Named("excel"),
	}
}

var _ ports.CatalogSource = (*CatalogReader)(nil)

// Load implements ports.CatalogSource.
func (r *CatalogReader) Load(ctx context.Context) (*halo.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: snapshot file %s", core.ErrCatalogNotFound, r.path)
	}

	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(r.path)) {
	case ".csv":
		rows, err = r.readCSV()
	case ".xlsx":
		rows, err = r.readXLSX()
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q", filepath.Ext(r.path))
	}
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, core.ErrEmptyCatalog
	}

	halos, err := parseHalos(rows)
	if err != nil {
		return nil, err
	}
	r.logger.Info("loaded %d halos from %s", len(halos), r.path)

	return &halo.Catalog{
		SnapshotID: core.NewSnapshotID(),
		SimName:    r.simName,
		Redshift:   r.redshift,
		Lbox:       r.lbox,
		Halos:      halos,
	}, nil
}

func (r *CatalogReader) readCSV() ([][]string, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", r.path, err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func (r *CatalogReader) readXLSX() ([][]string, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", r.path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, core.ErrEmptyCatalog
	}
	return f.GetRows(sheets[0])
}

func parseHalos(rows [][]string) ([]halo.Halo, error) {
	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["halo_mvir"]; !ok {
		return nil, core.NewConfigError("snapshot", "missing halo_mvir column")
	}

	field := func(row []string, name string) (float64, bool) {
		i, ok := cols[name]
		if !ok || i >= len(row) || row[i] == "" {
			return 0, false
		}
		v, err := strconv.ParseFloat(row[i], 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}

	halos := make([]halo.Halo, 0, len(rows)-1)
	for n, row := range rows[1:] {
		mvir, ok := field(row, "halo_mvir")
		if !ok || mvir <= 0 {
			return nil, core.NewConfigError("snapshot", fmt.Sprintf("row %d: invalid halo_mvir", n+2))
		}
		h := halo.Halo{ID: int64(n + 1), Mvir: mvir}
		if v, ok := field(row, "halo_id"); ok {
			h.ID = int64(v)
		}
		if v, ok := field(row, "halo_vmax"); ok {
			h.Vmax = v
		}
		if v, ok := field(row, "halo_nfw_conc"); ok {
			h.Conc = v
		}
		if v, ok := field(row, "halo_zhalf"); ok {
			h.Zhalf = v
		}
		if v, ok := field(row, "x"); ok {
			h.X = v
		}
		if v, ok := field(row, "y"); ok {
			h.Y = v
		}
		if v, ok := field(row, "z"); ok {
			h.Z = v
		}
		halos = append(halos, h)
	}
	return halos, nil
}
