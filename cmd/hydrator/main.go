// Package main provides the CLI entrypoint for hydrator.
//
// hydrator works with types whose absent fields are filled by package hydrate:
//   - check: statically reports fields a hydration would fail on
//   - demo: hydrates the sample store documents and prints their state
//   - init: writes a settings file with every policy spelled out
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
