package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/liftlab/swole/internal/program"
)

// Table writes one grid per mesocycle: a column per micro, a row per
// session slot, each cell listing that session's resolved sets.
func Table(w io.Writer, p *program.Program, tm, rounding float64) {
	fmt.Fprintln(w, TitleStyle.Render(titleLine(p.Name)))

	titler := cases.Title(language.English)
	for _, meso := range p.Mesos {
		etm := meso.EffectiveTM(tm)

		headers := make([]string, 0, len(meso.Micros))
		var rows [][]string
		for col, micro := range meso.Micros {
			headers = append(headers, titleHeading(titler, meso.Name+"."+micro.Name))
			for rowIdx, session := range micro.Sessions {
				for len(rows) <= rowIdx {
					rows = append(rows, make([]string, len(meso.Micros)))
				}
				lines := make([]string, 0, len(session.Sets))
				for _, ws := range session.Sets {
					lines = append(lines, ws.Stringify(etm, rounding))
				}
				rows[rowIdx][col] = strings.Join(lines, "\n")
			}
		}

		grid := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(BorderStyle).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return HeaderStyle
				}
				return CellStyle
			}).
			Headers(headers...).
			Rows(rows...)

		fmt.Fprintln(w, grid.Render())
	}
}

// titleHeading title-cases each dot-separated segment on its own. The
// caser treats a dot between alphanumeric runs as a word joiner, so
// applied to the whole heading it would leave "m1.w1" as "M1.w1".
func titleHeading(titler cases.Caser, name string) string {
	parts := strings.Split(name, ".")
	for i, part := range parts {
		parts[i] = titler.String(part)
	}
	return strings.Join(parts, ".")
}
