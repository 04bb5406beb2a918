package composite

import (
	"strings"

	"github.com/ShuleiCao/halotools/domain/core"
	"github.com/ShuleiCao/halotools/domain/galprop"
	"github.com/ShuleiCao/halotools/internal/models/smhm"
)

// Behroozi10Builder produces the Behroozi et al. (2010) SMHM component.
func Behroozi10Builder(cfg smhm.Config) (galprop.ComponentModel, error) {
	return smhm.NewBehroozi10(cfg)
}

// Moster13Builder produces the Moster, Naab & White (2013) SMHM component.
func Moster13Builder(cfg smhm.Config) (galprop.ComponentModel, error) {
	return smhm.NewMoster13(cfg)
}

// SmHmBuilderByName maps a relation name to its builder, for callers that
// select the SMHM model from configuration or request payloads.
func SmHmBuilderByName(name string) (SmHmBuilder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "behroozi10", "behroozi":
		return Behroozi10Builder, nil
	case "moster13", "moster":
		return Moster13Builder, nil
	default:
		return nil, core.NewConfigError("smhm_model", "unknown relation "+name)
	}
}
