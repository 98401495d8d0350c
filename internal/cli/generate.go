package cli

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"closepack"
	"closepack/cif"
	"closepack/stackplot"
	"closepack/topas"
)

func newGenerateCmd() *cobra.Command {
	var (
		cfgPath string
		outDir  string
		format  string
		plot    bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build the configured polytypes and write their structure files",
		Long: `Generate assembles the selected stacking polytypes into supercells and
writes one structure file per polytype into the output directory. Without a
config file it builds the whole table with hydrated-birnessite defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := defaultConfig()
			if cfgPath != "" {
				var err error
				cfg, err = loadConfig(cfgPath)
				if err != nil {
					return err
				}
			}
			if format != "" {
				cfg.Format = format
			}
			if plot {
				cfg.Plot = true
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			return generate(cmd.Context(), cfg, outDir)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "TOML config file with generation parameters")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory for the generated files")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: cif, str or both (overrides the config)")
	cmd.Flags().BoolVarP(&plot, "plot", "p", false, "also render a side-view png per polytype")
	return cmd
}

// generate builds every polytype in cfg and writes the requested files under
// outDir, creating it if needed.
func generate(ctx context.Context, cfg config, outDir string) error {
	logger := loggerFromContext(ctx)
	latt, err := closepack.NewLattice(math.Sqrt(3)*cfg.B, cfg.B, cfg.LayerC, 90, 90, 90)
	if err != nil {
		return err
	}
	anion, err := closepack.HexLayer(cfg.Anion, 1, cfg.Biso, latt)
	if err != nil {
		return err
	}
	cation, err := closepack.HexLayer(cfg.Cation, cfg.CationOcc, cfg.Biso, latt.Copy())
	if err != nil {
		return err
	}
	interlayer := []closepack.Vec3{closepack.BirnessiteInterlayer(cfg.D001, cfg.LayerC)}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("output directory: %w", err)
	}
	logger.Debug("sheet lattice ready", "a", latt.A(), "b", latt.B(), "interlayer", interlayer[0][2])
	for _, name := range cfg.Polytypes {
		if err := ctx.Err(); err != nil {
			return err
		}
		seq, err := closepack.PolytypeSequence(name, anion, cation)
		if err != nil {
			return err
		}
		blocks, err := closepack.PolytypeBlocks(name)
		if err != nil {
			return err
		}
		sup, err := closepack.Build(seq, interlayer, closepack.SheetPeriod, blocks*cfg.Repeat)
		if err != nil {
			return fmt.Errorf("build %s: %w", name, err)
		}
		base := filepath.Join(outDir, name)
		if cfg.Format == "cif" || cfg.Format == "both" {
			if err := cif.WriteFile(base+".cif", sup); err != nil {
				return err
			}
		}
		if cfg.Format == "str" || cfg.Format == "both" {
			if err := topas.WriteFile(base+".str", sup); err != nil {
				return err
			}
		}
		if cfg.Plot {
			if err := stackplot.SideView(sup, name, base+".png"); err != nil {
				return err
			}
		}
		logger.Info("wrote polytype", "polytype", name, "sites", sup.Len(), "c", sup.Lattice().C())
	}
	return nil
}
