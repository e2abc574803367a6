package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/digitbin/digitbin"
)

// runConfig holds the demo's tunables, bound either from flags or from a
// config file via viper — mirroring junjiewwang-perf-analysis's
// mapstructure-tagged config structs, scaled down to this demo's needs.
type runConfig struct {
	Precision  int    `mapstructure:"precision"`
	Population int    `mapstructure:"population"`
	BatchSize  int    `mapstructure:"batch_size"`
	Seed1      uint64 `mapstructure:"seed1"`
	Seed2      uint64 `mapstructure:"seed2"`
}

func defaultRunConfig() runConfig {
	return runConfig{
		Precision:  3,
		Population: 100_000,
		BatchSize:  100,
		Seed1:      42,
		Seed2:      42,
	}
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Populate an index and run sequential + batch draws against it",
	RunE:  runDemo,
}

func init() {
	cfg := defaultRunConfig()

	runCmd.Flags().Int("precision", cfg.Precision, "quantization precision P (1..18)")
	runCmd.Flags().Int("population", cfg.Population, "synthetic population size")
	runCmd.Flags().Int("batch-size", cfg.BatchSize, "items drawn per SelectManyAndRemove call")
	runCmd.Flags().Uint64("seed1", cfg.Seed1, "PCG seed word 1")
	runCmd.Flags().Uint64("seed2", cfg.Seed2, "PCG seed word 2")

	_ = viper.BindPFlag("precision", runCmd.Flags().Lookup("precision"))
	_ = viper.BindPFlag("population", runCmd.Flags().Lookup("population"))
	_ = viper.BindPFlag("batch_size", runCmd.Flags().Lookup("batch-size"))
	_ = viper.BindPFlag("seed1", runCmd.Flags().Lookup("seed1"))
	_ = viper.BindPFlag("seed2", runCmd.Flags().Lookup("seed2"))
}

func runDemo(_ *cobra.Command, _ []string) error {
	cfg := defaultRunConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	idx, err := digitbin.New(cfg.Precision, digitbin.WithSeed(cfg.Seed1, cfg.Seed2))
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}

	prng := rand.New(rand.NewPCG(cfg.Seed1+1, cfg.Seed2+1))
	for id := uint64(0); id < uint64(cfg.Population); id++ {
		weight := prng.Float64()
		if err := idx.Add(id, weight); err != nil {
			return fmt.Errorf("seed population: %w", err)
		}
	}

	logger.Info("populated index: count=%d total_weight=%s", idx.Count(), idx.TotalWeight())

	for idx.Count() >= cfg.BatchSize {
		id, weight, ok := idx.SelectAndRemove()
		if !ok {
			break
		}
		logger.Debug("sequential draw: id=%d weight=%s remaining=%d", id, weight, idx.Count())

		if idx.Count() < cfg.BatchSize {
			break
		}

		ids, ok := idx.SelectManyAndRemove(cfg.BatchSize)
		if !ok {
			break
		}
		logger.Info("batch draw: drew=%d remaining=%d", len(ids), idx.Count())
	}

	logger.Info("done: count=%d total_weight=%s", idx.Count(), idx.TotalWeight())

	return nil
}
