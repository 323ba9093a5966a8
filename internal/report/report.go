// Package report formats a finished search for humans and for CSV consumers.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/copyleftdev/SEEKR/internal/errors"
	"github.com/copyleftdev/SEEKR/internal/search"
)

// Pretty outputs a human-readable rather than machine-readable table.
func Pretty(w io.Writer, cfg search.Config, result *search.Result) error {
	if result == nil || len(result.Trace) == 0 {
		return errors.New("nothing to report: empty result").
			WithOperation("pretty").WithComponent("report")
	}

	p := message.NewPrinter(language.English)

	if _, err := p.Fprintf(w, "--- Blind search over [%v, %v]^%d, %d samples ---\n",
		cfg.LowerBound, cfg.UpperBound, cfg.Dimension, cfg.SampleCount); err != nil {
		return err
	}
	fmt.Fprintf(w, "Sample   | Value         | Coordinates\n")
	fmt.Fprintf(w, "______   | _____________ | ___________\n")

	for _, point := range result.Trace {
		if _, err := p.Fprintf(w, "%8d | %13.6g | %s\n",
			point.Iteration, point.Value, formatCoordinates(point.Coordinates)); err != nil {
			return err
		}
	}

	_, err := p.Fprintf(w, "Best value %.6g after %d evaluations\n",
		result.BestValue, result.Evaluations)
	return err
}

// CSV outputs the improving trace in comma-separated value format with the
// header iteration,x1..xd,value.
func CSV(w io.Writer, result *search.Result) error {
	if result == nil || len(result.Trace) == 0 {
		return errors.New("nothing to report: empty result").
			WithOperation("csv").WithComponent("report")
	}

	cw := csv.NewWriter(w)
	dims := len(result.Trace[0].Coordinates)

	header := make([]string, 0, dims+2)
	header = append(header, "iteration")
	for d := 1; d <= dims; d++ {
		header = append(header, fmt.Sprintf("x%d", d))
	}
	header = append(header, "value")
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, 0, dims+2)
	for _, point := range result.Trace {
		row = row[:0]
		row = append(row, strconv.Itoa(point.Iteration))
		for _, v := range point.Coordinates {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		row = append(row, strconv.FormatFloat(point.Value, 'g', -1, 64))
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatCoordinates(x []float64) string {
	parts := make([]string, len(x))
	for i, v := range x {
		parts[i] = strconv.FormatFloat(v, 'g', 6, 64)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
