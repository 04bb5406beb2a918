// Package factory assembles component-model blueprints into composite
// subhalo models and runs mock population against halo catalogs.
package factory

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/ShuleiCao/halotools/domain/core"
	"github.com/ShuleiCao/halotools/domain/galprop"
	"github.com/ShuleiCao/halotools/domain/halo"
	"github.com/ShuleiCao/halotools/internal"
	"github.com/ShuleiCao/halotools/ports"
)

// SubhaloModel is a composite galaxy-halo model: one component model per
// galaxy property, plus an optional galaxy selection applied after
// population. Instances are immutable once constructed.
type SubhaloModel struct {
	name      string
	blueprint *galprop.Blueprint
	selection galprop.SelectionFunc
	logger    *internal.Logger
}

// Option customizes a SubhaloModel at construction time.
type Option func(*SubhaloModel)

// WithName sets the model name recorded on populated catalogs.
func WithName(name string) Option {
	return func(m *SubhaloModel) { m.name = name }
}

// WithSelection attaches a galaxy selection applied after all component
// models have run.
func WithSelection(fn galprop.SelectionFunc) Option {
	return func(m *SubhaloModel) { m.selection = fn }
}

// WithLogger overrides the model's logger.
func WithLogger(logger *internal.Logger) Option {
	return func(m *SubhaloModel) { m.logger = logger }
}

// NewSubhaloModel builds a composite model from a blueprint. The blueprint
// is cloned, so later mutation of the caller's copy does not reach the
// model.
func NewSubhaloModel(blueprint *galprop.Blueprint, opts ...Option) (*SubhaloModel, error) {
	if blueprint == nil || blueprint.Len() == 0 {
		return nil, core.ErrEmptyBlueprint
	}
	m := &SubhaloModel{
		name:      "subhalo_model",
		blueprint: blueprint.Clone(),
		logger:    internal.DefaultLogger.Named("factory"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Name returns the model name.
func (m *SubhaloModel) Name() string { return m.name }

// Blueprint returns a clone of the model's blueprint.
func (m *SubhaloModel) Blueprint() *galprop.Blueprint { return m.blueprint.Clone() }

// Selection returns the attached selection, or nil when none exists.
func (m *SubhaloModel) Selection() galprop.SelectionFunc { return m.selection }

// PopulateMock populates a mock galaxy catalog from the halo catalog.
// One galaxy is seeded per halo; each component model then assigns its
// property from its own named deterministic stream, so the result depends
// only on the catalog, the model, and the seed. Component models write
// disjoint galaxy properties and run concurrently, bounded by GOMAXPROCS.
func (m *SubhaloModel) PopulateMock(ctx context.Context, rng ports.RNGPort, catalog *halo.Catalog, seed int64) (*halo.GalaxyCatalog, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, core.ErrEmptyCatalog
	}

	start := time.Now()
	galaxies := seedGalaxies(catalog)

	workers := int64(runtime.GOMAXPROCS(0))
	sem := semaphore.NewWeighted(workers)
	var mu sync.Mutex
	var firstErr error

	for _, name := range m.blueprint.Names() {
		model, _ := m.blueprint.Get(name)
		stream, err := rng.SeededStream(ctx, "populate/"+name, seed)
		if err != nil {
			return nil, err
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		go func(name string, model galprop.ComponentModel) {
			defer sem.Release(1)
			if err := model.Assign(ctx, stream, catalog, galaxies); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("assign %s: %w", name, err)
				}
				mu.Unlock()
			}
		}(name, model)
	}
	if err := sem.Acquire(ctx, workers); err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}

	if m.selection != nil {
		galaxies = applySelection(galaxies, m.selection)
	}

	m.logger.Debug("populated %d galaxies from %d halos in %s",
		len(galaxies), catalog.Len(), time.Since(start))

	return &halo.GalaxyCatalog{
		RunID:     core.NewRunID(),
		ModelName: m.name,
		SimName:   catalog.SimName,
		Redshift:  catalog.Redshift,
		Seed:      seed,
		CreatedAt: time.Now().UTC(),
		Galaxies:  galaxies,
	}, nil
}

func seedGalaxies(catalog *halo.Catalog) []halo.Galaxy {
	galaxies := make([]halo.Galaxy, catalog.Len())
	for i := range catalog.Halos {
		h := &catalog.Halos[i]
		galaxies[i] = halo.Galaxy{
			HaloID:   h.ID,
			HaloMvir: h.Mvir,
			X:        h.X,
			Y:        h.Y,
			Z:        h.Z,
		}
	}
	return galaxies
}

func applySelection(galaxies []halo.Galaxy, keep galprop.SelectionFunc) []halo.Galaxy {
	kept := galaxies[:0]
	for _, g := range galaxies {
		if keep(g) {
			kept = append(kept, g)
		}
	}
	out := make([]halo.Galaxy, len(kept))
	copy(out, kept)
	return out
}
