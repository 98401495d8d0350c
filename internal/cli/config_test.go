package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "defective.toml")
	text := `
cation_occupancy = 0.8333
polytypes = ["3R1", "3H2"]
format = "both"
repeat = 2
`
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		Te.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		Te.Fatal(err)
	}
	if cfg.CationOcc != 0.8333 || cfg.Repeat != 2 || cfg.Format != "both" {
		Te.Errorf("overrides not applied: %+v", cfg)
	}
	if len(cfg.Polytypes) != 2 || cfg.Polytypes[0] != "3R1" {
		Te.Errorf("polytype selection not applied: %v", cfg.Polytypes)
	}
	if cfg.B != 2.85 || cfg.D001 != 7.1 || cfg.Anion != "O" {
		Te.Errorf("unset keys lost their defaults: %+v", cfg)
	}
	if err := cfg.validate(); err != nil {
		Te.Errorf("loaded config must validate: %v", err)
	}
}

func TestValidate(Te *testing.T) {
	if err := defaultConfig().validate(); err != nil {
		Te.Errorf("defaults must validate: %v", err)
	}
	bad := []func(*config){
		func(c *config) { c.B = 0 },
		func(c *config) { c.LayerC = -1 },
		func(c *config) { c.D001 = 2 }, //below the 3-sheet block height
		func(c *config) { c.Repeat = 0 },
		func(c *config) { c.Format = "xyz" },
		func(c *config) { c.Polytypes = nil },
		func(c *config) { c.Polytypes = []string{"4H"} },
	}
	for i, mutate := range bad {
		cfg := defaultConfig()
		mutate(&cfg)
		if err := cfg.validate(); err == nil {
			Te.Errorf("case %d: invalid config accepted: %+v", i, cfg)
		}
	}
}

func TestLoadConfigMissing(Te *testing.T) {
	if _, err := loadConfig(filepath.Join(Te.TempDir(), "absent.toml")); err == nil {
		Te.Error("missing file must be reported")
	}
}
