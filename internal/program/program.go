// Package program models a lifting program as nested training cycles
// and resolves set percentages against a training max.
package program

import (
	"fmt"
	"math"
	"strconv"
)

// DefaultRounding is the plate increment weights are rounded down to
// when no explicit rounding is given.
const DefaultRounding = 5.0

// WorkingSet is a single prescribed set: a percentage of the training
// max for a number of reps. AMRAP sets ("as many reps as possible")
// carry a minimum rep count.
type WorkingSet struct {
	Percent float64
	Reps    int
	AMRAP   bool
}

// Weight resolves the set against a training max, rounded down to the
// nearest plate increment. With no training max the raw percentage is
// returned unchanged.
func (ws WorkingSet) Weight(tm, rounding float64) float64 {
	if tm == 0 {
		return ws.Percent
	}
	return Round(tm*ws.Percent, rounding)
}

// Stringify renders the set as "<weight> x <reps>", with a trailing "+"
// for AMRAP sets.
func (ws WorkingSet) Stringify(tm, rounding float64) string {
	reps := strconv.Itoa(ws.Reps)
	if ws.AMRAP {
		reps += "+"
	}
	return fmt.Sprintf("%.1f x %s", ws.Weight(tm, rounding), reps)
}

// Session is one training day: a named ordered list of working sets.
type Session struct {
	Name string
	Sets []WorkingSet
}

// MicroCycle is typically a week of sessions.
type MicroCycle struct {
	Name     string
	Sessions []Session
}

// MesoCycle is a block of micros sharing one training max. TMInc is
// added to the program training max for the whole block.
type MesoCycle struct {
	Name   string
	TMInc  float64
	Micros []MicroCycle
}

// EffectiveTM is the training max this block trains at, or zero when no
// program training max is supplied.
func (m MesoCycle) EffectiveTM(tm float64) float64 {
	if tm == 0 {
		return 0
	}
	return tm + m.TMInc
}

// Program is the full progression: a named ordered list of mesocycles.
type Program struct {
	Name  string
	Mesos []MesoCycle
}

// FlatSession is one session joined with its enclosing cycles, in
// program order.
type FlatSession struct {
	Meso    MesoCycle
	Micro   MicroCycle
	Session Session
}

// QualifiedName is the dotted heading "meso.micro.session".
func (f FlatSession) QualifiedName() string {
	return f.Meso.Name + "." + f.Micro.Name + "." + f.Session.Name
}

// Flatten lists every session in execution order.
func (p *Program) Flatten() []FlatSession {
	var out []FlatSession
	for _, meso := range p.Mesos {
		for _, micro := range meso.Micros {
			for _, session := range micro.Sessions {
				out = append(out, FlatSession{Meso: meso, Micro: micro, Session: session})
			}
		}
	}
	return out
}

// Round floors value to the nearest multiple of rounding. A zero
// rounding means DefaultRounding.
func Round(value, rounding float64) float64 {
	if rounding == 0 {
		rounding = DefaultRounding
	}
	return math.Floor(value/rounding) * rounding
}
