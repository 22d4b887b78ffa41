package benchmark

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/mwiater/stadion/internal/appconfig"
	"github.com/mwiater/stadion/internal/report"
	"github.com/mwiater/stadion/internal/tui"
)

// ErrAborted is returned when the user quits the progress display before the
// run completes.
var ErrAborted = fmt.Errorf("benchmark run aborted")

// runOutcome carries the worker goroutine's result back over a channel so the
// handoff is ordered even when the display exits before the run does.
type runOutcome struct {
	sections []*report.Section
	err      error
}

// RunBenchmarkSuites is the CLI entry point for benchmark runs. It drives a
// live progress display on interactive terminals, prints the sorted report
// tables, and writes the JSON document when JSON mode is enabled.
func RunBenchmarkSuites(cfg *appconfig.Config, suiteNames []string) error {
	if cfg == nil {
		log.Println("config is nil")
		return nil
	}

	interactive := isatty.IsTerminal(os.Stdout.Fd()) && !cfg.JSONMode
	if !interactive {
		sections, err := RunSuites(context.Background(), cfg, suiteNames, Callbacks{})
		if err != nil {
			return err
		}
		return emit(cfg, sections)
	}

	model := tui.NewModel()
	program := tea.NewProgram(model)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan runOutcome, 1)
	go func() {
		sections, err := RunSuites(ctx, cfg, suiteNames, Callbacks{
			OnSuite: func(name string) {
				program.Send(tui.SuiteMsg{Suite: name})
			},
			OnTrial: func(variantName string, trial, total int) {
				program.Send(tui.TrialMsg{Variant: variantName, Trial: trial, Total: total})
			},
		})
		done <- runOutcome{sections: sections, err: err}
		program.Send(tui.DoneMsg{})
	}()

	final, err := program.Run()
	// Stop the worker before touching its result. A user quit leaves the
	// goroutine mid-run; cancelling the context gives it an exit path and the
	// channel receive orders its writes before ours.
	cancel()
	outcome := <-done
	if err != nil {
		return fmt.Errorf("progress display: %w", err)
	}
	if m, ok := final.(*tui.Model); ok && !m.Done() {
		return ErrAborted
	}
	if outcome.err != nil {
		return outcome.err
	}
	return emit(cfg, outcome.sections)
}

// emit prints each section's table and, in JSON mode, writes the results
// document instead.
func emit(cfg *appconfig.Config, sections []*report.Section) error {
	if cfg.JSONMode {
		_, err := report.WriteJSON(sections, cfg.TrialCount())
		return err
	}
	for _, section := range sections {
		fmt.Println(report.Render(section))
	}
	return nil
}
