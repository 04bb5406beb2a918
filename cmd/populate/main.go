package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ShuleiCao/halotools/adapters/excel"
	"github.com/ShuleiCao/halotools/app"
	"github.com/ShuleiCao/halotools/domain/halo"
	"github.com/ShuleiCao/halotools/internal/composite"
	"github.com/ShuleiCao/halotools/internal/models/assembias"
	"github.com/ShuleiCao/halotools/internal/rng"
	"github.com/ShuleiCao/halotools/internal/testkit"
	"github.com/ShuleiCao/halotools/ports"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "halotools",
		Short: "Populate mock galaxy catalogs from halo catalogs",
	}

	rootCmd.AddCommand(
		newPopulateCmd(),
		newFakeSimCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newPopulateCmd() *cobra.Command {
	var (
		seed       int64
		haloCount  int
		snapshot   string
		smhmModel  string
		scatter    float64
		redshift   float64
		threshold  float64
		abcissa    []float64
		ordinates  []float64
		linear     bool
		biasStr    float64
		biasSplit  float64
		secProp    string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "populate",
		Short: "Populate a mock galaxy catalog with the SmHmBinarySFR composite model",
		Long: `Populate a mock galaxy catalog from a halo catalog.

Without --snapshot a deterministic fake simulation is generated in memory.

Example: halotools populate --seed 42 --scatter 0.2 --threshold 3.16e10 --out galaxies.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := composite.DefaultSmHmBinarySFRConfig()
			builder, err := composite.SmHmBuilderByName(smhmModel)
			if err != nil {
				return err
			}
			cfg.SmHmBuilder = builder
			cfg.ScatterLevel = scatter
			cfg.Redshift = redshift
			if len(abcissa) > 0 {
				cfg.SFRAbcissa = abcissa
			}
			if len(ordinates) > 0 {
				cfg.SFROrdinates = ordinates
			}
			cfg.LogParam = !linear

			var thresholdPtr *float64
			if cmd.Flags().Changed("threshold") {
				thresholdPtr = &threshold
			}
			cfg.Threshold = thresholdPtr

			if cmd.Flags().Changed("assembias") {
				cfg.AssemBias = &assembias.Config{
					Strength:      biasStr,
					SplitFraction: biasSplit,
					SecHaloprop:   secProp,
				}
			}

			model, err := composite.NewSmHmBinarySFR(cfg)
			if err != nil {
				return err
			}

			var source ports.CatalogSource
			if snapshot != "" {
				source = excel.NewCatalogReader(snapshot, "snapshot", redshift, 0)
			} else {
				fakeCfg := testkit.DefaultFakeSimConfig()
				fakeCfg.HaloCount = haloCount
				fakeCfg.Seed = seed
				fakeCfg.Redshift = redshift
				source = testkit.NewFakeSim(fakeCfg)
			}

			service := app.NewPopulationService(source, rng.NewStreamSource(), nil, excel.NewCatalogExporter())
			result, err := service.Populate(context.Background(), app.PopulateRequest{
				Model:      model,
				Seed:       seed,
				Threshold:  thresholdPtr,
				ExportPath: outputPath,
			})
			if err != nil {
				return err
			}

			printSummary(cmd, result)
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 43, "population random seed")
	cmd.Flags().IntVar(&haloCount, "halos", 10000, "fake simulation halo count")
	cmd.Flags().StringVar(&snapshot, "snapshot", "", "halo catalog snapshot file (.csv or .xlsx)")
	cmd.Flags().StringVar(&smhmModel, "smhm", "behroozi10", "stellar-to-halo-mass relation (behroozi10 or moster13)")
	cmd.Flags().Float64Var(&scatter, "scatter", 0.2, "stellar mass scatter in dex")
	cmd.Flags().Float64Var(&redshift, "redshift", 0, "snapshot redshift")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "stellar mass lower bound, Msun")
	cmd.Flags().Float64SliceVar(&abcissa, "sfr-abcissa", nil, "quiescent fraction control point locations")
	cmd.Flags().Float64SliceVar(&ordinates, "sfr-ordinates", nil, "quiescent fraction control point values")
	cmd.Flags().BoolVar(&linear, "linear", false, "interpolate quiescent fraction linearly instead of in log10")
	cmd.Flags().Float64Var(&biasStr, "assembias", 0, "assembly bias strength in [-1, 1]")
	cmd.Flags().Float64Var(&biasSplit, "assembias-split", 0.5, "assembly bias split fraction")
	cmd.Flags().StringVar(&secProp, "sec-haloprop", "", "secondary halo property for assembly bias")
	cmd.Flags().StringVar(&outputPath, "out", "", "export path (.csv or .xlsx)")

	return cmd
}

func newFakeSimCmd() *cobra.Command {
	var (
		haloCount  int
		seed       int64
		redshift   float64
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "fake-sim",
		Short: "Generate a deterministic synthetic halo catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			fakeCfg := testkit.DefaultFakeSimConfig()
			fakeCfg.HaloCount = haloCount
			fakeCfg.Seed = seed
			fakeCfg.Redshift = redshift

			catalog, err := testkit.NewFakeSim(fakeCfg).Generate()
			if err != nil {
				return err
			}
			cmd.Printf("generated %d halos (sim %s, seed %d)\n", catalog.Len(), catalog.SimName, catalog.Seed)

			if outputPath != "" {
				return writeHaloCSV(catalog, outputPath)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&haloCount, "halos", 10000, "halo count")
	cmd.Flags().Int64Var(&seed, "seed", 43, "generation seed")
	cmd.Flags().Float64Var(&redshift, "redshift", 0, "snapshot redshift")
	cmd.Flags().StringVar(&outputPath, "out", "", "write halos to a CSV file")

	return cmd
}

func printSummary(cmd *cobra.Command, result *app.PopulateResult) {
	quiescent := 0
	for _, g := range result.Catalog.Galaxies {
		if g.Quiescent {
			quiescent++
		}
	}
	cmd.Printf("run %s: %d halos -> %d galaxies\n",
		result.Run.ID, result.Run.HaloCount, result.Run.GalaxyCount)
	if n := result.Catalog.Len(); n > 0 {
		cmd.Printf("quiescent fraction: %.3f\n", float64(quiescent)/float64(n))
	}
}

func writeHaloCSV(catalog *halo.Catalog, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, "halo_id,halo_mvir,halo_vmax,halo_nfw_conc,halo_zhalf,x,y,z"); err != nil {
		return err
	}
	for _, h := range catalog.Halos {
		if _, err := fmt.Fprintf(f, "%d,%g,%g,%g,%g,%g,%g,%g\n",
			h.ID, h.Mvir, h.Vmax, h.Conc, h.Zhalf, h.X, h.Y, h.Z); err != nil {
			return err
		}
	}
	return nil
}
