// benchmark/benchmark.go
package benchmark

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mwiater/stadion/internal/appconfig"
	"github.com/mwiater/stadion/internal/cc"
	"github.com/mwiater/stadion/internal/input"
	"github.com/mwiater/stadion/internal/report"
	"github.com/mwiater/stadion/internal/runner"
	"github.com/mwiater/stadion/internal/suite"
)

// Callbacks lets callers observe a run as it progresses. Either field may be
// nil.
type Callbacks struct {
	OnSuite func(name string)
	OnTrial runner.Progress
}

// RunSuites builds and benchmarks the named suites against one shared input
// buffer and returns a freshly constructed report section per suite. An empty
// name list falls back to the configured suites, then to every registered
// suite.
func RunSuites(ctx context.Context, cfg *appconfig.Config, suiteNames []string, callbacks Callbacks) ([]*report.Section, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is not initialized")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(suiteNames) == 0 {
		suiteNames = cfg.Suites
	}
	if len(suiteNames) == 0 {
		suiteNames = suite.Names()
	}

	defs := make([]*suite.Definition, 0, len(suiteNames))
	for _, name := range suiteNames {
		def, err := suite.Lookup(name)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	workDir, err := cc.TempWorkDir(cfg.WorkDir)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cc.CleanWorkDir(workDir); err != nil {
			log.Printf("error cleaning work directory %s: %v", workDir, err)
		}
	}()

	compiler := cc.New(cfg.CompilerPath(), workDir, cfg.CompileTimeoutDuration())
	if !compiler.Available() {
		return nil, fmt.Errorf("toolchain %q not found in PATH", cfg.CompilerPath())
	}

	buf := input.Generate(cfg.BufferSize(), cfg.Seed)
	log.Printf("Running suites %s against %d values (seed %d)", strings.Join(suiteNames, ", "), buf.Len(), buf.Seed())

	r := runner.New(cfg.TrialCount(), cfg.WarmupCount())
	r.Debug = cfg.Debug
	r.OnTrial = callbacks.OnTrial

	sections := make([]*report.Section, 0, len(defs))
	for _, def := range defs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if callbacks.OnSuite != nil {
			callbacks.OnSuite(def.Name)
		}
		section, err := runSuite(ctx, def, compiler, buf, r, cfg.EquivalenceTolerance())
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}

	return sections, nil
}

// runSuite assembles one suite, checks variant equivalence, times every
// variant, and releases the suite's native resources before returning.
func runSuite(ctx context.Context, def *suite.Definition, compiler *cc.Compiler, buf *input.Buffer, r *runner.Runner, tolerance float64) (*report.Section, error) {
	built, err := def.Build(ctx, compiler)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := built.Close(); err != nil {
			log.Printf("error releasing suite %s: %v", def.Name, err)
		}
	}()

	matches := make(map[string]bool, len(built.Set.Variants))
	for _, check := range built.Set.CheckEquivalence(buf.Data(), tolerance) {
		matches[check.Name] = check.Match
		if !check.Match {
			log.Printf("equivalence mismatch in suite %s: variant %s returned %g, baseline %g", def.Name, check.Name, check.Result, check.Baseline)
		}
	}

	section := report.NewSection(def.Name, def.Quantity)
	for _, v := range built.Set.Variants {
		result := r.Run(def.Name, v, buf.Data())
		result.Match = matches[v.Name]
		section.Add(result)
	}

	return section, nil
}
