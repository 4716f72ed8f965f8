package models

import "sort"

// ExtractionResult maps a declaration name to the raw body text captured
// for it. A name that did not match is absent; there is no error value.
type ExtractionResult struct {
	bodies map[string]string
}

// NewExtractionResult copies bodies into a new result
func NewExtractionResult(bodies map[string]string) ExtractionResult {
	copied := make(map[string]string, len(bodies))
	for name, body := range bodies {
		copied[name] = body
	}
	return ExtractionResult{bodies: copied}
}

// Get returns the body captured for name
func (r ExtractionResult) Get(name string) (string, bool) {
	body, ok := r.bodies[name]
	return body, ok
}

// Has reports whether name was matched
func (r ExtractionResult) Has(name string) bool {
	_, ok := r.bodies[name]
	return ok
}

// Len returns the number of matched declarations
func (r ExtractionResult) Len() int {
	return len(r.bodies)
}

// Names returns the matched declaration names in sorted order
func (r ExtractionResult) Names() []string {
	names := make([]string, 0, len(r.bodies))
	for name := range r.bodies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CheckOutcome is the pass/fail result of one pipeline step
type CheckOutcome struct {
	Label  string
	Passed bool
}

// Summary is the ordered list of outcomes produced by a pipeline run
type Summary struct {
	Outcomes []CheckOutcome
}

// Add appends an outcome
func (s *Summary) Add(label string, passed bool) {
	s.Outcomes = append(s.Outcomes, CheckOutcome{Label: label, Passed: passed})
}

// Passed is the logical AND of every outcome. An empty summary passes.
func (s Summary) Passed() bool {
	for _, o := range s.Outcomes {
		if !o.Passed {
			return false
		}
	}
	return true
}

// FailedCount returns how many outcomes failed
func (s Summary) FailedCount() int {
	n := 0
	for _, o := range s.Outcomes {
		if !o.Passed {
			n++
		}
	}
	return n
}
