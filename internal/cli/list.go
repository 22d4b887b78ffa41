// internal/cli/list.go
package stadion

import (
	"github.com/spf13/cobra"
)

// listCmd represents the 'list' command group for enumerating resources.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for listing resources",
	Long:  `The 'list' command groups subcommands that enumerate resources or information related to stadion.`,
}

func init() {
	rootCmd.AddCommand(listCmd)
}
