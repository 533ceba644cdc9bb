// runstats_summarize reads labelled numeric samples from stdin or a file and
// prints per-label summary statistics.
//
// Input is one sample per line, either "label,value" or a bare "value".
// Blank lines and lines starting with '#' are ignored.
package main

import (
	"fmt"

	"github.com/blagojts/viper"
	"github.com/spf13/pflag"

	"github.com/runstats/runstats/internal/utils"
	"github.com/runstats/runstats/pkg/samples"
)

// Global vars:
var runner *samples.Runner

// Parse args:
func init() {
	var config samples.RunnerConfig
	config.AddToFlagSet(pflag.CommandLine)

	pflag.Parse()

	err := utils.SetupConfigFile()

	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s", err))
	}

	if err := viper.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("unable to decode config: %s", err))
	}

	runner = samples.NewRunner(config)
}

func main() {
	runner.Run(samples.NewLineParser)
}
