// internal/report/report.go
// Package report renders benchmark results as sorted console tables and JSON
// documents.
package report

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mwiater/stadion/internal/runner"
	"github.com/mwiater/stadion/internal/util"
)

// maxVariantWidth bounds the variant column so long names cannot distort the
// table.
const maxVariantWidth = 32

// Section holds the results of one suite. Every section owns a freshly
// constructed result list; nothing carries over between sections.
type Section struct {
	Suite    string                  `json:"suite"`
	Quantity string                  `json:"quantity"`
	Results  []*runner.VariantResult `json:"results"`
}

// NewSection returns an empty section for the named suite.
func NewSection(suite, quantity string) *Section {
	return &Section{Suite: suite, Quantity: quantity, Results: make([]*runner.VariantResult, 0)}
}

// Add appends a variant result to the section.
func (s *Section) Add(result *runner.VariantResult) {
	s.Results = append(s.Results, result)
}

// Sorted returns the section's results ordered ascending by the minimum
// statistic. The sort is stable, so rendering the same section twice yields
// the same ordering.
func (s *Section) Sorted() []*runner.VariantResult {
	sorted := make([]*runner.VariantResult, len(s.Results))
	copy(sorted, s.Results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Min < sorted[j].Min
	})
	return sorted
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// Render produces the section's table, sorted ascending by minimum time.
func Render(s *Section) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("VARIANT", "MIN (MS)", "MEAN (MS)", "TRIALS", "EQUIV")

	for _, result := range s.Sorted() {
		equiv := "ok"
		if !result.Match {
			equiv = alertStyle.Render("MISMATCH")
		}
		t.Row(
			util.TruncateRunes(result.VariantName, maxVariantWidth),
			fmt.Sprintf("%.3f", result.MinMillis()),
			fmt.Sprintf("%.3f", result.MeanMillis()),
			fmt.Sprintf("%d", result.TrialCount),
			equiv,
		)
	}

	title := titleStyle.Render(fmt.Sprintf("%s — %s", s.Suite, s.Quantity))
	return title + "\n" + t.Render() + "\n"
}
