// internal/report/write.go
package report

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwiater/stadion/internal/util"
)

const resultsDir = "stadionData/benchResults"

// WriteJSON writes the sections to an indented JSON document under the
// results directory and returns the file path. Section results are written in
// sorted order so the document matches the rendered tables.
func WriteJSON(sections []*Section, trials int) (string, error) {
	if len(sections) == 0 {
		return "", fmt.Errorf("no sections to write")
	}

	var suiteNames []string
	ordered := make([]*Section, 0, len(sections))
	for _, section := range sections {
		suiteNames = append(suiteNames, section.Suite)
		ordered = append(ordered, &Section{
			Suite:    section.Suite,
			Quantity: section.Quantity,
			Results:  section.Sorted(),
		})
	}

	if err := os.MkdirAll(resultsDir, 0o755); err != nil {
		return "", fmt.Errorf("error creating results directory: %w", err)
	}
	fileName := filepath.Join(resultsDir, fmt.Sprintf("%s-%d.json", util.Slugify(strings.Join(suiteNames, "-")), trials))

	data, err := json.MarshalIndent(ordered, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error encoding results: %w", err)
	}
	if err := util.WriteFile(fileName, data); err != nil {
		return "", fmt.Errorf("error writing results to file: %w", err)
	}

	log.Printf("Benchmark results written to %s", fileName)

	return fileName, nil
}
