// internal/report/report_test.go
package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mwiater/stadion/internal/runner"
)

func sampleSection() *Section {
	s := NewSection("sum", "array summation")
	s.Add(&runner.VariantResult{VariantName: "slow", TrialCount: 3, Min: 30 * time.Millisecond, Mean: 31 * time.Millisecond, Match: true})
	s.Add(&runner.VariantResult{VariantName: "fast", TrialCount: 3, Min: 1 * time.Millisecond, Mean: 2 * time.Millisecond, Match: true})
	s.Add(&runner.VariantResult{VariantName: "tied-a", TrialCount: 3, Min: 5 * time.Millisecond, Mean: 5 * time.Millisecond, Match: true})
	s.Add(&runner.VariantResult{VariantName: "tied-b", TrialCount: 3, Min: 5 * time.Millisecond, Mean: 6 * time.Millisecond, Match: false})
	return s
}

func TestSortedAscendingAndStable(t *testing.T) {
	t.Parallel()

	s := sampleSection()

	first := s.Sorted()
	if first[0].VariantName != "fast" || first[len(first)-1].VariantName != "slow" {
		t.Fatalf("unexpected order: %q ... %q", first[0].VariantName, first[len(first)-1].VariantName)
	}

	// ties keep insertion order
	if first[1].VariantName != "tied-a" || first[2].VariantName != "tied-b" {
		t.Fatalf("tie ordering not stable: %q, %q", first[1].VariantName, first[2].VariantName)
	}

	second := s.Sorted()
	for i := range first {
		if first[i].VariantName != second[i].VariantName {
			t.Fatalf("repeated sort changed ordering at %d: %q vs %q", i, first[i].VariantName, second[i].VariantName)
		}
	}

	// the section itself is untouched
	if s.Results[0].VariantName != "slow" {
		t.Fatalf("Sorted mutated the section: %q", s.Results[0].VariantName)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	out := Render(sampleSection())

	if !strings.Contains(out, "sum — array summation") {
		t.Fatalf("missing section title:\n%s", out)
	}
	for _, want := range []string{"VARIANT", "MIN (MS)", "fast", "slow", "MISMATCH"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered table missing %q:\n%s", want, out)
		}
	}

	fastIdx := strings.Index(out, "fast")
	slowIdx := strings.Index(out, "slow")
	if fastIdx < 0 || slowIdx < 0 || fastIdx > slowIdx {
		t.Fatalf("rows not sorted ascending:\n%s", out)
	}

	if Render(sampleSection()) != out {
		t.Fatal("re-rendering the same section changed the output")
	}
}

func TestWriteJSON(t *testing.T) {
	tempDir := t.TempDir()
	prevDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevDir) })

	path, err := WriteJSON([]*Section{sampleSection()}, 3)
	if err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	expected := filepath.Join("stadionData", "benchResults", "sum-3.json")
	if path != expected {
		t.Fatalf("unexpected path %q, want %q", path, expected)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read results: %v", err)
	}
	var decoded []Section
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid json output: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Suite != "sum" {
		t.Fatalf("unexpected document: %+v", decoded)
	}
	if decoded[0].Results[0].VariantName != "fast" {
		t.Fatalf("results not sorted in document: %q", decoded[0].Results[0].VariantName)
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	t.Parallel()

	if _, err := WriteJSON(nil, 3); err == nil {
		t.Fatal("expected an error for an empty section list")
	}
}
