// Package render prints a loaded program, either as banner-separated
// session blocks or as one grid table per mesocycle.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/liftlab/swole/internal/program"
)

// Plain writes every session in program order under a dotted heading,
// one resolved set per line. A non-zero tm resolves percentages into
// weights and annotates each heading with the block's training max.
func Plain(w io.Writer, p *program.Program, tm, rounding float64) {
	fmt.Fprintln(w, TitleStyle.Render(titleLine(p.Name)))

	for _, flat := range p.Flatten() {
		name := strings.ToUpper(flat.QualifiedName())
		banner := strings.Repeat("-", min(10, len(name)))
		etm := flat.Meso.EffectiveTM(tm)

		heading := banner + " " + name
		if tm != 0 {
			heading += fmt.Sprintf(" [TM: %g]", etm)
		}
		heading += " " + banner
		fmt.Fprintln(w, BannerStyle.Render(heading))

		for _, ws := range flat.Session.Sets {
			fmt.Fprintln(w, ws.Stringify(etm, rounding))
		}
	}
}

func titleLine(name string) string {
	header := strings.Repeat("=", max(20, len(name)))
	return header + " " + name + " " + header
}
