// SPDX-License-Identifier: MIT

package bench

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

var lang = language.English

// Format selects how a Report is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat maps "text" or "yaml" (case-insensitive, "yml" accepted) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "table":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", benchErrorf(s, ErrUnknownFormat)
	}
}

// Report is the outcome of Runner.Run.
type Report struct {
	Size    int      `yaml:"size"`
	Rounds  int      `yaml:"rounds"`
	Results []Result `yaml:"results"`
}

var resultHeader = []string{"Case", "Type", "Elapsed", "Sum", "Average", "Min", "Max", "Sigma"}

// Write renders the report to w.
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatYAML:
		return writeYAML(w, r)
	case FormatText:
		p := message.NewPrinter(lang)
		title := p.Sprintf("size %d, rounds %d", r.Size, r.Rounds)
		rows := make([][]string, 0, len(r.Results))
		for _, res := range r.Results {
			rows = append(rows, []string{
				res.Case,
				res.Type,
				res.Elapsed.String(),
				res.Stats.Sum,
				res.Stats.Average,
				res.Stats.Min,
				res.Stats.Max,
				res.Stats.Sigma,
			})
		}
		_, err := io.WriteString(w, fmtTable(title, resultHeader, rows))
		return err
	default:
		return benchErrorf(string(f), ErrUnknownFormat)
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

// fmtTable draws a boxed table with a centred title. Column widths follow the
// display width of the widest cell.
func fmtTable(title string, header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	inner := -1
	for _, w := range widths {
		inner += w + 3
	}
	if tw := runewidth.StringWidth(title) + 2; tw > inner {
		widths[len(widths)-1] += tw - inner
		inner = tw
	}

	var b strings.Builder
	top := "+" + strings.Repeat("-", inner) + "+\n"
	divider := "+"
	for _, w := range widths {
		divider += strings.Repeat("-", w+2) + "+"
	}
	divider += "\n"

	left := (inner - runewidth.StringWidth(title)) / 2
	right := inner - runewidth.StringWidth(title) - left

	b.WriteString(top)
	b.WriteString("|" + blank(left) + title + blank(right) + "|\n")
	b.WriteString(divider)
	writeRow(&b, header, widths)
	b.WriteString(divider)
	for _, row := range rows {
		writeRow(&b, row, widths)
	}
	b.WriteString(divider)

	return b.String()
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	b.WriteString("|")
	for i, cell := range cells {
		b.WriteString(" " + runewidth.FillRight(cell, widths[i]) + " |")
	}
	b.WriteString("\n")
}

func blank(w int) string {
	if w < 1 {
		return ""
	}

	return strings.Repeat(" ", w)
}
