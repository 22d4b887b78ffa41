// internal/cli/list_suites.go
package stadion

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mwiater/stadion/internal/suite"
)

// listSuitesCmd implements 'list suites', which prints every registered suite
// and its description.
var listSuitesCmd = &cobra.Command{
	Use:   "suites",
	Short: "List the available benchmark suites",
	Run: func(cmd *cobra.Command, args []string) {
		name := color.New(color.FgCyan, color.Bold)
		for _, n := range suite.Names() {
			def, err := suite.Lookup(n)
			if err != nil {
				continue
			}
			name.Printf("%s\n", def.Name)
			fmt.Printf("  %s\n", def.Description)
		}
	},
}

func init() {
	listCmd.AddCommand(listSuitesCmd)
}
