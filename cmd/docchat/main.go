// Command docchat is the entry point for the DocChat CLI.
package main

import (
	"github.com/custodia-labs/docchat-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
