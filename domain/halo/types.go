package halo

import (
	"time"

	"github.com/ShuleiCao/halotools/domain/core"
)

// Halo property keys recognized by Catalog.Column. These follow the
// halo_<property> column naming convention used by simulation catalogs.
const (
	PropMvir     = "halo_mvir"
	PropVmax     = "halo_vmax"
	PropConc     = "halo_nfw_conc"
	PropZhalf    = "halo_zhalf"
	PropRedshift = "halo_redshift"
)

// Halo is a single dark-matter halo record from a simulation snapshot.
type Halo struct {
	ID    int64   `json:"id" db:"id"`
	Mvir  float64 `json:"mvir" db:"mvir"`   // virial mass, Msun/h
	Vmax  float64 `json:"vmax" db:"vmax"`   // peak circular velocity, km/s
	Conc  float64 `json:"conc" db:"conc"`   // NFW concentration
	Zhalf float64 `json:"zhalf" db:"zhalf"` // half-mass assembly redshift
	X     float64 `json:"x" db:"x"`         // comoving position, Mpc/h
	Y     float64 `json:"y" db:"y"`
	Z     float64 `json:"z" db:"z"`
}

// Catalog is a halo catalog drawn from a single simulation snapshot.
type Catalog struct {
	SnapshotID   core.SnapshotID `json:"snapshot_id"`
	SimName      string          `json:"sim_name"`
	Redshift     float64         `json:"redshift"`
	Lbox         float64         `json:"lbox"`          // comoving box size, Mpc/h
	ParticleMass float64         `json:"particle_mass"` // Msun/h
	Seed         int64           `json:"seed,omitempty"`
	Halos        []Halo          `json:"halos"`
}

// Len returns the number of halos in the catalog.
func (c *Catalog) Len() int {
	return len(c.Halos)
}

// Column extracts the named halo property as a dense float64 slice,
// one entry per halo in catalog order.
func (c *Catalog) Column(key string) ([]float64, error) {
	get, err := propertyAccessor(key)
	if err != nil {
		return nil, err
	}
	col := make([]float64, len(c.Halos))
	for i := range c.Halos {
		col[i] = get(&c.Halos[i])
	}
	return col, nil
}

// HasProperty reports whether key names a halo property this catalog can serve.
func HasProperty(key string) bool {
	_, err := propertyAccessor(key)
	return err == nil
}

func propertyAccessor(key string) (func(*Halo) float64, error) {
	switch key {
	case PropMvir:
		return func(h *Halo) float64 { return h.Mvir }, nil
	case PropVmax:
		return func(h *Halo) float64 { return h.Vmax }, nil
	case PropConc:
		return func(h *Halo) float64 { return h.Conc }, nil
	case PropZhalf:
		return func(h *Halo) float64 { return h.Zhalf }, nil
	default:
		return nil, core.NewUnknownHalopropError(key)
	}
}

// Galaxy is a mock galaxy seeded on a (sub)halo, with properties
// assigned by the component models of a composite model.
type Galaxy struct {
	HaloID      int64   `json:"halo_id" db:"halo_id"`
	HaloMvir    float64 `json:"halo_mvir" db:"halo_mvir"`
	StellarMass float64 `json:"stellar_mass" db:"stellar_mass"` // Msun
	Quiescent   bool    `json:"quiescent" db:"quiescent"`
	X           float64 `json:"x" db:"x"`
	Y           float64 `json:"y" db:"y"`
	Z           float64 `json:"z" db:"z"`
}

// GalaxyCatalog is the output of populating a halo catalog with a composite model.
type GalaxyCatalog struct {
	RunID     core.RunID `json:"run_id"`
	ModelName string     `json:"model_name"`
	SimName   string     `json:"sim_name"`
	Redshift  float64    `json:"redshift"`
	Seed      int64      `json:"seed"`
	CreatedAt time.Time  `json:"created_at"`
	Galaxies  []Galaxy   `json:"galaxies"`
}

// Len returns the number of galaxies in the catalog.
func (g *GalaxyCatalog) Len() int {
	return len(g.Galaxies)
}
