package formatter

import (
	"encoding/json"

	"github.com/gnolang/hilbert/proof"
)

// ReportJSON is one checked proof file.
type ReportJSON struct {
	File      string      `json:"file"`
	Header    string      `json:"header,omitempty"`
	OK        bool        `json:"ok"`
	Lines     []LineJSON  `json:"lines,omitempty"`
	Errors    []ErrorJSON `json:"errors,omitempty"`
	ElapsedMS float64     `json:"elapsed_ms"`
	Error     string      `json:"error,omitempty"`
}

// LineJSON is a proof line with its justification or error.
type LineJSON struct {
	Line          int    `json:"line"`
	Source        string `json:"source"`
	Justification string `json:"justification,omitempty"`
	Error         string `json:"error,omitempty"`
}

// ErrorJSON is one check error. Line is omitted for the wrong goal error.
type ErrorJSON struct {
	Line    int    `json:"line,omitempty"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// NewReportJSON converts r to its JSON shape.
func NewReportJSON(r *proof.Report) ReportJSON {
	out := ReportJSON{
		File:      r.File,
		Header:    r.Header,
		OK:        r.OK(),
		ElapsedMS: float64(r.Elapsed.Microseconds()) / 1000,
	}
	if r.Err != nil {
		out.Error = r.Err.Error()
		return out
	}
	if r.Result == nil {
		return out
	}

	for _, l := range r.Result.Lines {
		lj := LineJSON{Line: l.Index + 1, Source: l.Source}
		if l.Err != nil {
			lj.Error = l.Err.Msg
		} else {
			lj.Justification = l.Annotation()
		}
		out.Lines = append(out.Lines, lj)
	}
	for _, e := range r.Result.Errors {
		out.Errors = append(out.Errors, ErrorJSON{Line: e.Line, Kind: e.Kind.String(), Message: e.Msg})
	}
	return out
}

// MarshalReports encodes reports as an indented JSON array.
func MarshalReports(reports []*proof.Report) ([]byte, error) {
	out := make([]ReportJSON, len(reports))
	for i, r := range reports {
		out[i] = NewReportJSON(r)
	}
	return json.MarshalIndent(out, "", "  ")
}
