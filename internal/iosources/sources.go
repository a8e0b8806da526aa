// Package iosources loads the nomenclature source registry from
// sources.yaml in the user's config directory.
package iosources

import (
	"log/slog"
	"os"

	"github.com/gnames/gndwca/pkg/config"
	"github.com/gnames/gndwca/pkg/sources"
	"gopkg.in/yaml.v3"
)

type iosources struct {
	cfg *config.Config
}

// New creates a registry loader bound to the config's home directory.
func New(cfg *config.Config) sources.Sources {
	res := iosources{cfg: cfg}
	return &res
}

// Load reads and validates sources.yaml. Validation warnings are logged
// and kept on the returned registry; validation failures are fatal.
func (s *iosources) Load() (*sources.Registry, error) {
	path := config.SourcesFilePath(s.cfg.HomeDir)
	reg, err := loadRegistry(path)
	if err != nil {
		return nil, SourcesConfigError(path, err)
	}

	for _, w := range reg.Warnings {
		slog.Warn("Sources configuration", "warning", w)
	}
	return reg, nil
}

func loadRegistry(path string) (*sources.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var reg sources.Registry
	if err = yaml.Unmarshal(data, &reg); err != nil {
		return nil, err
	}
	if err = reg.Validate(); err != nil {
		return nil, err
	}
	return &reg, nil
}
