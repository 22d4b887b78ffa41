// internal/cli/list_commands.go
package stadion

import "github.com/spf13/cobra"

// commandsCmd implements 'list commands', which prints the available
// commands and subcommands in a hierarchical, indented, two-column format.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the full command tree in two columns",
	Long:  `The 'commands' subcommand walks the stadion command tree and prints it in a hierarchical, indented format, with the command path in the first column and its short description in the second.`,
	Run: func(cmd *cobra.Command, args []string) {
		runListCommands(rootCmd)
	},
}

func init() {
	listCmd.AddCommand(commandsCmd)
}
