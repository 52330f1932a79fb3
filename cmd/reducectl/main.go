// Command reducectl is the operator CLI: schema migrations, projects, upkeep
// items and time reports from the shell
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
