package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/scott-cotton/cli"

	"null-hydrator/internal/analyze"
	"null-hydrator/internal/diagnostic"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least one package pattern", cli.ErrUsage)
	}

	graph, err := analyze.NewAnalyzer("").LoadPackages(args...)
	if err != nil {
		return err
	}
	cfg.Logger.Debug("packages loaded",
		slog.Int("packages", len(graph.Packages)),
		slog.Int("types", len(graph.Types)))

	checker := analyze.NewChecker(cfg.Settings.Policy.Enum(), cfg.Settings.Skip...)
	diags := checker.CheckGraph(graph)

	p := newPrinter(cc.Out, cfg.colored(cc.Out))
	if cfg.Verbose {
		describe(cc.Out, graph)
	}
	p.report(diags)

	if failed(diags, cfg.Strict) {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func describe(w io.Writer, graph *analyze.TypeGraph) {
	stringer := analyze.NewTypeStringer()
	for _, t := range graph.Structs() {
		fmt.Fprint(w, stringer.Describe(t))
	}
}

func failed(diags diagnostic.Diagnostics, strict bool) bool {
	return diags.HasErrors() || (strict && len(diags.Warnings) > 0)
}
