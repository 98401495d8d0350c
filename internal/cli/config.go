package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"closepack"
)

// config holds the generation parameters. The zero config is not usable;
// start from defaultConfig, which reproduces the hydrated birnessite cells
// of the literature: b = 2.85, a = sqrt(3)*b implied, unit sheet height and
// a 7.1 Angstrom basal spacing.
type config struct {
	B         float64  `toml:"b"`                // in-plane b length, Angstrom
	LayerC    float64  `toml:"layer_c"`          // single sheet height, Angstrom
	D001      float64  `toml:"d001"`             // basal spacing, Angstrom
	Anion     string   `toml:"anion"`            // anion sheet species
	Cation    string   `toml:"cation"`           // cation sheet species
	CationOcc float64  `toml:"cation_occupancy"` // cation sheet occupancy
	Biso      float64  `toml:"biso"`             // isotropic thermal parameter
	Polytypes []string `toml:"polytypes"`        // which table entries to build; empty = all
	Repeat    int      `toml:"repeat"`           // supercell multiplier along c
	Format    string   `toml:"format"`           // cif, str or both
	Plot      bool     `toml:"plot"`             // also render a side-view png
}

func defaultConfig() config {
	return config{
		B:         2.85,
		LayerC:    1,
		D001:      7.1,
		Anion:     "O",
		Cation:    "Mn",
		CationOcc: 1,
		Biso:      1,
		Polytypes: closepack.Polytypes(),
		Repeat:    1,
		Format:    "cif",
	}
}

// loadConfig reads a TOML file over the defaults, so unset keys keep their
// default values.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func (c config) validate() error {
	if c.B <= 0 {
		return fmt.Errorf("config: b must be positive, got %g", c.B)
	}
	if c.LayerC <= 0 {
		return fmt.Errorf("config: layer_c must be positive, got %g", c.LayerC)
	}
	if c.D001 < closepack.SheetPeriod*c.LayerC {
		return fmt.Errorf("config: d001 (%g) below the block height (%g): the interlayer spacing would be negative", c.D001, float64(closepack.SheetPeriod)*c.LayerC)
	}
	if c.Repeat < 1 {
		return fmt.Errorf("config: repeat must be at least 1, got %d", c.Repeat)
	}
	switch c.Format {
	case "cif", "str", "both":
	default:
		return fmt.Errorf("config: unknown format %q (want cif, str or both)", c.Format)
	}
	if len(c.Polytypes) == 0 {
		return fmt.Errorf("config: no polytypes selected")
	}
	for _, name := range c.Polytypes {
		if _, err := closepack.PolytypeBlocks(name); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}
