// internal/cli/run_suites.go
package stadion

import (
	"github.com/mwiater/stadion/internal/benchmark"
	"github.com/mwiater/stadion/internal/logging"
	"github.com/spf13/cobra"
)

// runSuitesCmd implements 'run suites', which benchmarks the named suites (or
// every configured suite when no names are given) and prints sorted reports.
var runSuitesCmd = &cobra.Command{
	Use:   "suites [suite...]",
	Short: "Run benchmark suites and print sorted timing reports",
	Long:  `The 'suites' subcommand generates the shared input buffer, compiles the native kernels, runs every variant of each named suite, and prints a table per suite sorted ascending by minimum time. With no arguments it runs the suites from the config file, or all of them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg != nil && cfg.Debug {
			if err := logging.Init(cfg.LogFilePath()); err != nil {
				return err
			}
			defer func() { _ = logging.Close() }()
		}
		return benchmark.RunBenchmarkSuites(cfg, args)
	},
}

func init() {
	runCmd.AddCommand(runSuitesCmd)
}
