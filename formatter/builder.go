// Package formatter renders proof reports for terminals and as JSON.
package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/gnolang/hilbert/internal/checker"
	"github.com/gnolang/hilbert/proof"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	okStyle      = color.New(color.FgGreen, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	messageStyle = color.New(color.FgRed)
	ruleStyle    = color.New(color.FgYellow)
	noStyle      = color.New(color.FgWhite)
)

// GenerateFormattedReport renders one report: the sequent, every line
// annotated with its justification or error, then the error summary.
func GenerateFormattedReport(r *proof.Report) string {
	var b strings.Builder
	b.WriteString(header(r.File, r.Header))

	if r.Err != nil {
		b.WriteString(errorStyle.Sprint("error: "))
		b.WriteString(messageStyle.Sprintf("%v\n", r.Err))
		return b.String()
	}
	if r.Result == nil {
		return b.String()
	}

	for _, l := range r.Result.Lines {
		b.WriteString(line(l))
	}
	b.WriteString(summary(r.Result.Errors))
	return b.String()
}

// GenerateFormattedReports renders every report separated by a blank line.
func GenerateFormattedReports(reports []*proof.Report) string {
	parts := make([]string, len(reports))
	for i, r := range reports {
		parts[i] = GenerateFormattedReport(r)
	}
	return strings.Join(parts, "\n")
}

func header(file, sequent string) string {
	if file == "" {
		return noStyle.Sprintf("%s\n", sequent)
	}
	return fileStyle.Sprint(file) + lineStyle.Sprint(": ") + noStyle.Sprintf("%s\n", sequent)
}

func line(l checker.Line) string {
	num := lineStyle.Sprintf("(%d)", l.Index+1)
	if l.Err != nil {
		return fmt.Sprintf("%s %s (%s)\n", num, l.Source, messageStyle.Sprint(l.Err.Msg))
	}
	return fmt.Sprintf("%s %s (%s)\n", num, l.Source, ruleStyle.Sprint(l.Annotation()))
}

func summary(errs checker.ErrorList) string {
	if len(errs) == 0 {
		return okStyle.Sprint("ok: ") + "no errors\n"
	}

	var b strings.Builder
	noun := "errors"
	if len(errs) == 1 {
		noun = "error"
	}
	b.WriteString(errorStyle.Sprintf("found %d %s\n", len(errs), noun))
	for _, e := range errs {
		b.WriteString(messageStyle.Sprintf("%s\n", e.Error()))
	}
	return b.String()
}
