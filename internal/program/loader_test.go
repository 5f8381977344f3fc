package program

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleProgram = `
name: test program
mesos:
  - name: m1
    tm_inc: 5
    micros:
      - name: w1
        sessions:
          - name: squat
            sets:
              - percent: 0.65
                reps: 5
              - percent: 0.75
                reps: 5
              - percent: 0.85
                reps: 5
                amrap: true
      - name: w2
        sessions:
          - name: squat
            sets:
              - percent: 0.6
                reps: 5
                sets: 3
`

func TestLoad(t *testing.T) {
	p, err := Load(strings.NewReader(sampleProgram))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Name != "test program" {
		t.Errorf("name = %q, want %q", p.Name, "test program")
	}
	if len(p.Mesos) != 1 {
		t.Fatalf("got %d mesos, want 1", len(p.Mesos))
	}

	meso := p.Mesos[0]
	if meso.TMInc != 5 {
		t.Errorf("tm_inc = %v, want 5", meso.TMInc)
	}
	if len(meso.Micros) != 2 {
		t.Fatalf("got %d micros, want 2", len(meso.Micros))
	}

	w1 := meso.Micros[0].Sessions[0]
	if len(w1.Sets) != 3 {
		t.Fatalf("w1 squat has %d sets, want 3", len(w1.Sets))
	}
	if !w1.Sets[2].AMRAP {
		t.Error("last w1 set should be amrap")
	}

	// "sets: 3" expands to three identical working sets.
	w2 := meso.Micros[1].Sessions[0]
	if len(w2.Sets) != 3 {
		t.Fatalf("w2 squat has %d sets, want 3", len(w2.Sets))
	}
	for i, ws := range w2.Sets {
		if ws.Percent != 0.6 || ws.Reps != 5 {
			t.Errorf("w2 set %d = %+v, want 0.6 x 5", i, ws)
		}
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "not yaml",
			doc:     "\t{{nope",
			wantErr: nil, // any error
		},
		{
			name:    "missing program name",
			doc:     "mesos: [{name: m1, micros: [{name: w1, sessions: [{name: s, sets: [{percent: 0.5, reps: 5}]}]}]}]",
			wantErr: ErrMissingName,
		},
		{
			name:    "no mesos",
			doc:     "name: p",
			wantErr: ErrNoCycles,
		},
		{
			name:    "no sessions",
			doc:     "name: p\nmesos: [{name: m1, micros: [{name: w1}]}]",
			wantErr: ErrNoCycles,
		},
		{
			name:    "no sets",
			doc:     "name: p\nmesos: [{name: m1, micros: [{name: w1, sessions: [{name: s}]}]}]",
			wantErr: ErrNoSets,
		},
		{
			name:    "zero percent",
			doc:     "name: p\nmesos: [{name: m1, micros: [{name: w1, sessions: [{name: s, sets: [{percent: 0, reps: 5}]}]}]}]",
			wantErr: ErrBadPercent,
		},
		{
			name:    "zero reps",
			doc:     "name: p\nmesos: [{name: m1, micros: [{name: w1, sessions: [{name: s, sets: [{percent: 0.5, reps: 0}]}]}]}]",
			wantErr: ErrBadReps,
		},
		{
			name:    "negative set count",
			doc:     "name: p\nmesos: [{name: m1, micros: [{name: w1, sessions: [{name: s, sets: [{percent: 0.5, reps: 5, sets: -1}]}]}]}]",
			wantErr: ErrBadSetCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "program.yaml")
		if err := os.WriteFile(path, []byte(sampleProgram), 0644); err != nil {
			t.Fatal(err)
		}

		p, err := LoadFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != "test program" {
			t.Errorf("name = %q, want %q", p.Name, "test program")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}
