// Command xgxchain parses type tags and renders exception chains described in
// TOML fixtures.
package main

import (
	"context"
	"os"

	"github.com/xgx-io/xgx-exception/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
