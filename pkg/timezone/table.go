package timezone

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/codeGROOVE-dev/jdcal/pkg/constants"
	"github.com/codeGROOVE-dev/jdcal/pkg/julian"
)

// ErrInvalidTable is returned for offset tables that fail validation.
var ErrInvalidTable = errors.New("invalid offset table")

// Transition switches the offset to OffsetHours from the UTC Julian Day JD on.
type Transition struct {
	JD          float64 `json:"jd"`
	OffsetHours float64 `json:"offset_hours"`
}

// Table resolves offsets from an ordered list of transitions. Before the
// first transition the Initial offset applies. A Table is immutable once
// built and safe for concurrent use.
type Table struct {
	Name        string
	Initial     float64
	Transitions []Transition
}

// NewTable validates the transitions and returns a Table. Transitions must
// be strictly increasing in JD, and every offset must lie within ±14 hours.
func NewTable(name string, initial float64, transitions ...Transition) (*Table, error) {
	if err := checkOffset(initial); err != nil {
		return nil, fmt.Errorf("%w: initial offset: %w", ErrInvalidTable, err)
	}
	for i, tr := range transitions {
		if math.IsNaN(tr.JD) || math.IsInf(tr.JD, 0) {
			return nil, fmt.Errorf("%w: transition %d: julian day %v is not finite", ErrInvalidTable, i, tr.JD)
		}
		if err := checkOffset(tr.OffsetHours); err != nil {
			return nil, fmt.Errorf("%w: transition %d: %w", ErrInvalidTable, i, err)
		}
		if i > 0 && tr.JD <= transitions[i-1].JD {
			return nil, fmt.Errorf("%w: transition %d at %v does not follow %v", ErrInvalidTable, i, tr.JD, transitions[i-1].JD)
		}
	}
	return &Table{
		Name:        name,
		Initial:     initial,
		Transitions: append([]Transition(nil), transitions...),
	}, nil
}

func checkOffset(hours float64) error {
	if math.IsNaN(hours) || math.Abs(hours) > constants.MaxOffsetHours {
		return fmt.Errorf("offset %v hours outside ±%d", hours, constants.MaxOffsetHours)
	}
	return nil
}

// OffsetHours returns the offset of the last transition at or before jd.
func (t *Table) OffsetHours(jd float64) float64 {
	i := sort.Search(len(t.Transitions), func(i int) bool {
		return t.Transitions[i].JD > jd
	})
	if i == 0 {
		return t.Initial
	}
	return t.Transitions[i-1].OffsetHours
}

func (t *Table) String() string {
	if t.Name != "" {
		return t.Name
	}
	return fmt.Sprintf("table(%d transitions)", len(t.Transitions))
}

type tableFile struct {
	Name               string           `yaml:"name"`
	InitialOffsetHours float64          `yaml:"initial_offset_hours"`
	Transitions        []transitionFile `yaml:"transitions"`
}

// A transition is given either as an RFC 3339 instant or as a Julian Day.
type transitionFile struct {
	At          string   `yaml:"at"`
	JD          *float64 `yaml:"jd"`
	OffsetHours *float64 `yaml:"offset_hours"`
}

// LoadTable reads a YAML offset table:
//
//	name: Europe/Berlin 2024
//	initial_offset_hours: 1
//	transitions:
//	  - at: 2024-03-31T01:00:00Z
//	    offset_hours: 2
//	  - jd: 2460610.5416666665
//	    offset_hours: 1
func LoadTable(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f tableFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding offset table: %w", err)
	}

	transitions := make([]Transition, 0, len(f.Transitions))
	for i, tf := range f.Transitions {
		var tr Transition
		switch {
		case tf.At != "" && tf.JD != nil:
			return nil, fmt.Errorf("%w: transition %d: both at and jd set", ErrInvalidTable, i)
		case tf.At != "":
			at, err := time.Parse(time.RFC3339, tf.At)
			if err != nil {
				return nil, fmt.Errorf("%w: transition %d: %w", ErrInvalidTable, i, err)
			}
			tr.JD = julian.FromTime(at)
		case tf.JD != nil:
			tr.JD = *tf.JD
		default:
			return nil, fmt.Errorf("%w: transition %d: one of at or jd is required", ErrInvalidTable, i)
		}
		if tf.OffsetHours == nil {
			return nil, fmt.Errorf("%w: transition %d: offset_hours is required", ErrInvalidTable, i)
		}
		tr.OffsetHours = *tf.OffsetHours
		transitions = append(transitions, tr)
	}
	return NewTable(f.Name, f.InitialOffsetHours, transitions...)
}

// LoadTableFile reads a YAML offset table from path.
func LoadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening offset table: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only

	t, err := LoadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
