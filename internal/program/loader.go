package program

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type setSpec struct {
	Percent float64 `yaml:"percent"`
	Reps    int     `yaml:"reps"`
	AMRAP   bool    `yaml:"amrap"`
	Sets    int     `yaml:"sets"`
}

type sessionSpec struct {
	Name string    `yaml:"name"`
	Sets []setSpec `yaml:"sets"`
}

type microSpec struct {
	Name     string        `yaml:"name"`
	Sessions []sessionSpec `yaml:"sessions"`
}

type mesoSpec struct {
	Name   string      `yaml:"name"`
	TMInc  float64     `yaml:"tm_inc"`
	Micros []microSpec `yaml:"micros"`
}

type programSpec struct {
	Name  string     `yaml:"name"`
	Mesos []mesoSpec `yaml:"mesos"`
}

// Load parses a program document from YAML. A set entry may carry
// "sets: n" to prescribe n identical working sets.
func Load(r io.Reader) (*Program, error) {
	var spec programSpec
	if err := yaml.NewDecoder(r).Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing program: %w", err)
	}
	return build(&spec)
}

// LoadFile reads and parses a program document from disk.
func LoadFile(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening program %s: %w", path, err)
	}
	defer f.Close()

	p, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading program %s: %w", path, err)
	}
	return p, nil
}

func build(spec *programSpec) (*Program, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("program: %w", ErrMissingName)
	}
	if len(spec.Mesos) == 0 {
		return nil, fmt.Errorf("program %q: %w", spec.Name, ErrNoCycles)
	}

	p := &Program{Name: spec.Name}
	for _, meso := range spec.Mesos {
		built, err := buildMeso(meso)
		if err != nil {
			return nil, err
		}
		p.Mesos = append(p.Mesos, built)
	}
	return p, nil
}

func buildMeso(spec mesoSpec) (MesoCycle, error) {
	if spec.Name == "" {
		return MesoCycle{}, fmt.Errorf("meso: %w", ErrMissingName)
	}
	if len(spec.Micros) == 0 {
		return MesoCycle{}, fmt.Errorf("meso %q: %w", spec.Name, ErrNoCycles)
	}

	meso := MesoCycle{Name: spec.Name, TMInc: spec.TMInc}
	for _, micro := range spec.Micros {
		built, err := buildMicro(spec.Name, micro)
		if err != nil {
			return MesoCycle{}, err
		}
		meso.Micros = append(meso.Micros, built)
	}
	return meso, nil
}

func buildMicro(meso string, spec microSpec) (MicroCycle, error) {
	if spec.Name == "" {
		return MicroCycle{}, fmt.Errorf("meso %q: micro: %w", meso, ErrMissingName)
	}
	if len(spec.Sessions) == 0 {
		return MicroCycle{}, fmt.Errorf("micro %q: %w", spec.Name, ErrNoCycles)
	}

	micro := MicroCycle{Name: spec.Name}
	for _, session := range spec.Sessions {
		built, err := buildSession(session)
		if err != nil {
			return MicroCycle{}, fmt.Errorf("micro %q: %w", spec.Name, err)
		}
		micro.Sessions = append(micro.Sessions, built)
	}
	return micro, nil
}

func buildSession(spec sessionSpec) (Session, error) {
	if spec.Name == "" {
		return Session{}, fmt.Errorf("session: %w", ErrMissingName)
	}
	if len(spec.Sets) == 0 {
		return Session{}, fmt.Errorf("session %q: %w", spec.Name, ErrNoSets)
	}

	session := Session{Name: spec.Name}
	for _, set := range spec.Sets {
		if set.Percent <= 0 {
			return Session{}, fmt.Errorf("session %q: %w", spec.Name, ErrBadPercent)
		}
		if set.Reps <= 0 {
			return Session{}, fmt.Errorf("session %q: %w", spec.Name, ErrBadReps)
		}
		if set.Sets < 0 {
			return Session{}, fmt.Errorf("session %q: %w", spec.Name, ErrBadSetCount)
		}

		count := set.Sets
		if count == 0 {
			count = 1
		}
		ws := WorkingSet{Percent: set.Percent, Reps: set.Reps, AMRAP: set.AMRAP}
		for i := 0; i < count; i++ {
			session.Sets = append(session.Sets, ws)
		}
	}
	return session, nil
}
