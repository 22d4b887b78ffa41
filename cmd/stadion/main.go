// cmd/stadion/main.go
package main

import (
	cmd "github.com/mwiater/stadion/internal/cli"
)

var executeCmd = cmd.Execute

// main starts the stadion CLI application by delegating to the
// cobra root command defined in the stadion package. It does not
// take any arguments and does not return a value.
func main() {
	executeCmd()
}
