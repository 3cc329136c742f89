// Package roster holds the set of employees the engine can answer about and
// matches their names in free text. The roster is data-driven: each entry maps
// an employee id to a display name and the surface variants users type
package roster

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"paychat/internal/core/textnorm"
)

//go:embed roster.json
var embedded []byte

// Employee is one roster entry
type Employee struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Variants []string `json:"variants"`
}

type rawRoster struct {
	Employees []Employee `json:"employees"`
}

// Roster matches employee mentions in query text.
// Definition order decides ties: the first entry with a matching variant wins
type Roster struct {
	entries []Employee

	// folded variant per entry, precomputed for whole-word containment
	folded [][]string
}

// Default loads the embedded roster. Panics on a corrupt embed, which is a
// build defect rather than a runtime condition
func Default() *Roster {
	r, err := FromJSON(embedded)
	if err != nil {
		panic(fmt.Sprintf("roster: embedded roster.json invalid: %v", err))
	}
	return r
}

// FromJSON builds a Roster from a JSON document
func FromJSON(doc []byte) (*Roster, error) {
	var raw rawRoster
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("roster: parse: %w", err)
	}
	if len(raw.Employees) == 0 {
		return nil, fmt.Errorf("roster: no employees defined")
	}
	return FromEntries(raw.Employees)
}

// FromEntries builds a Roster from already-decoded entries
func FromEntries(entries []Employee) (*Roster, error) {
	r := &Roster{
		entries: make([]Employee, 0, len(entries)),
		folded:  make([][]string, 0, len(entries)),
	}
	for _, e := range entries {
		if e.ID == "" || e.Name == "" {
			return nil, fmt.Errorf("roster: entry missing id or name")
		}
		variants := e.Variants
		if len(variants) == 0 {
			variants = []string{e.Name}
		}
		fv := make([]string, 0, len(variants)+1)
		fv = append(fv, textnorm.Fold(e.Name))
		for _, v := range variants {
			f := textnorm.Fold(v)
			if f != "" {
				fv = append(fv, f)
			}
		}
		r.entries = append(r.entries, e)
		r.folded = append(r.folded, fv)
	}
	return r, nil
}

// Match returns the first roster entry whose name or any variant occurs as a
// whole word in text. Matching is case-insensitive, diacritic-folded, and
// treats punctuation as whitespace. Returns false when nothing matches
func (r *Roster) Match(text string) (Employee, bool) {
	padded := " " + textnorm.Fold(text) + " "
	for i, e := range r.entries {
		for _, v := range r.folded[i] {
			if strings.Contains(padded, " "+v+" ") {
				return e, true
			}
		}
	}
	return Employee{}, false
}

// ByID returns the roster entry with the given id
func (r *Roster) ByID(id string) (Employee, bool) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

// Entries returns the roster in definition order
func (r *Roster) Entries() []Employee {
	out := make([]Employee, len(r.entries))
	copy(out, r.entries)
	return out
}

// Names returns the display names in definition order
func (r *Roster) Names() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Name
	}
	return out
}
