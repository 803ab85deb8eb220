package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"null-hydrator/internal/diagnostic"
)

type printer struct {
	w io.Writer

	errColor  *color.Color
	warnColor *color.Color
	infoColor *color.Color
	pathColor *color.Color
	hintColor *color.Color
}

func newPrinter(w io.Writer, colored bool) *printer {
	p := &printer{
		w:         w,
		errColor:  color.New(color.FgRed, color.Bold),
		warnColor: color.New(color.FgYellow),
		infoColor: color.New(color.FgCyan),
		pathColor: color.New(color.Bold),
		hintColor: color.New(color.Faint),
	}

	for _, c := range []*color.Color{p.errColor, p.warnColor, p.infoColor, p.pathColor, p.hintColor} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func (p *printer) severity(s diagnostic.DiagnosticSeverity) *color.Color {
	switch s {
	case diagnostic.DiagnosticError:
		return p.errColor
	case diagnostic.DiagnosticWarning:
		return p.warnColor
	default:
		return p.infoColor
	}
}

// report prints every diagnostic, most severe first, followed by a summary line.
func (p *printer) report(diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fmt.Fprintf(p.w, "%s %s [%s] %s: %s\n",
			p.severity(d.Severity).Sprint(d.Severity.String()),
			d.Code,
			d.TypeName,
			p.pathColor.Sprint(d.FieldPath),
			d.Message)

		for _, s := range d.Suggestions {
			fmt.Fprintf(p.w, "    %s\n", p.hintColor.Sprint("hint: "+s))
		}
	}

	fmt.Fprintf(p.w, "%d error(s), %d warning(s), %d info(s)\n",
		len(diags.Errors), len(diags.Warnings), len(diags.Infos))
}
