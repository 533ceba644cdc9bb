// runstats_generate emits synthetic sample streams drawn from a statistical
// distribution, in the "label,value" line format runstats_summarize reads.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/blagojts/viper"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/runstats/runstats/internal/utils"
	"github.com/runstats/runstats/pkg/generate"
)

const (
	distNormal            = "normal"
	distUniform           = "uniform"
	distRandomWalk        = "random-walk"
	distClampedRandomWalk = "clamped-random-walk"
)

var distChoices = []string{
	distNormal,
	distUniform,
	distRandomWalk,
	distClampedRandomWalk,
}

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "runstats_generate",
		Short: "Generate a synthetic sample stream",
		RunE:  runGenerate,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./runstats.yaml)")

	fs := rootCmd.Flags()
	fs.String("dist", distNormal, fmt.Sprintf("Distribution to draw from: %v", distChoices))
	fs.String("label", "samples", "Label to attach to every emitted sample")
	fs.Uint64("samples", 1000, "Number of samples to emit")
	fs.Int64("seed", 1, "PRNG seed, for reproducible streams")
	fs.Float64("mean", 0, "Mean of the normal distribution (also the step mean of the walks)")
	fs.Float64("stddev", 1, "Standard deviation of the normal distribution (also the step stddev of the walks)")
	fs.Float64("low", 0, "Lower bound of the uniform distribution")
	fs.Float64("high", 1, "Upper bound of the uniform distribution")
	fs.Float64("start", 0, "Starting state of the random walks")
	fs.Float64("min", 0, "Lower clamp of the clamped random walk")
	fs.Float64("max", 100, "Upper clamp of the clamped random walk")
	fs.Float64("rate", 0, "Samples per second to emit (0 = unthrottled)")
	fs.String("file", "", "File to write samples to (blank = stdout)")
	viper.BindPFlags(fs)
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in the execution directory with the name
		// "runstats.yaml" (without extension).
		viper.AddConfigPath(".")
		viper.SetConfigName("runstats")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

func buildDistribution(rng *rand.Rand) (generate.Distribution, error) {
	dist := viper.GetString("dist")
	if !utils.IsIn(dist, distChoices) {
		return nil, fmt.Errorf("invalid distribution %q (choose from %v)", dist, distChoices)
	}

	switch dist {
	case distUniform:
		return generate.NewUniformDistribution(rng, viper.GetFloat64("low"), viper.GetFloat64("high")), nil
	case distRandomWalk:
		return &generate.RandomWalkDistribution{
			State: viper.GetFloat64("start"),
			Step:  generate.NewNormalDistribution(rng, viper.GetFloat64("mean"), viper.GetFloat64("stddev")),
		}, nil
	case distClampedRandomWalk:
		return &generate.ClampedRandomWalkDistribution{
			State: viper.GetFloat64("start"),
			Step:  generate.NewNormalDistribution(rng, viper.GetFloat64("mean"), viper.GetFloat64("stddev")),
			Min:   viper.GetFloat64("min"),
			Max:   viper.GetFloat64("max"),
		}, nil
	default:
		return generate.NewNormalDistribution(rng, viper.GetFloat64("mean"), viper.GetFloat64("stddev")), nil
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	rng := rand.New(rand.NewSource(viper.GetInt64("seed")))
	dist, err := buildDistribution(rng)
	if err != nil {
		return err
	}

	out := os.Stdout
	if fileName := viper.GetString("file"); len(fileName) > 0 {
		f, err := os.Create(fileName)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	emitter := &generate.Emitter{
		Label: viper.GetString("label"),
		Dist:  dist,
	}
	if r := viper.GetFloat64("rate"); r > 0 {
		emitter.Limiter = rate.NewLimiter(rate.Limit(r), 1)
	}

	return emitter.Emit(context.Background(), out, viper.GetUint64("samples"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
