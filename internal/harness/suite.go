package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Expected error kinds in Expect.Error.
const (
	ExpectSourceNotFound = "source_not_found"
	ExpectMalformedInput = "malformed_input"
)

// Suite defines a conformance case for one relation.
type Suite struct {
	// Name uniquely identifies this suite; it also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this suite validates.
	Description string `yaml:"description"`

	// Source is a path to a relation source, relative to the suite file.
	Source string `yaml:"source,omitempty"`

	// Set and Relation give the two text lines inline.
	Set      string `yaml:"set,omitempty"`
	Relation string `yaml:"relation,omitempty"`

	// Expect lists the expected outcome. Only stated fields are checked.
	Expect Expect `yaml:"expect"`
}

// Expect holds the expected properties, closures or load error.
// Nil pointers mean "not checked".
type Expect struct {
	Error string `yaml:"error,omitempty"`

	Reflexive           *bool `yaml:"reflexive,omitempty"`
	Irreflexive         *bool `yaml:"irreflexive,omitempty"`
	Symmetric           *bool `yaml:"symmetric,omitempty"`
	Asymmetric          *bool `yaml:"asymmetric,omitempty"`
	Antisymmetric       *bool `yaml:"antisymmetric,omitempty"`
	Transitive          *bool `yaml:"transitive,omitempty"`
	EquivalenceRelation *bool `yaml:"equivalence_relation,omitempty"`
	PartialOrdering     *bool `yaml:"partial_ordering,omitempty"`

	ReflexiveClosure  *[][]string `yaml:"reflexive_closure,omitempty"`
	SymmetricClosure  *[][]string `yaml:"symmetric_closure,omitempty"`
	TransitiveClosure *[][]string `yaml:"transitive_closure,omitempty"`
}

// isEmpty reports whether no expectation is stated.
func (e Expect) isEmpty() bool {
	return e.Error == "" &&
		e.Reflexive == nil && e.Irreflexive == nil &&
		e.Symmetric == nil && e.Asymmetric == nil &&
		e.Antisymmetric == nil && e.Transitive == nil &&
		e.EquivalenceRelation == nil && e.PartialOrdering == nil &&
		e.ReflexiveClosure == nil && e.SymmetricClosure == nil &&
		e.TransitiveClosure == nil
}

// LoadSuite reads and parses a suite YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
//
// A relative Source is resolved against the suite file's directory.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	suite, err := ParseSuite(data)
	if err != nil {
		return nil, err
	}

	if suite.Source != "" && !filepath.IsAbs(suite.Source) {
		suite.Source = filepath.Join(filepath.Dir(path), suite.Source)
	}
	return suite, nil
}

// ParseSuite parses suite YAML with strict field validation.
func ParseSuite(data []byte) (*Suite, error) {
	var suite Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&suite); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateSuite(&suite); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}
	return &suite, nil
}

// validateSuite checks that required fields are present and valid.
func validateSuite(s *Suite) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	inline := s.Set != "" || s.Relation != ""
	switch {
	case s.Source != "" && inline:
		return fmt.Errorf("source and inline set/relation are mutually exclusive")
	case s.Source == "" && !inline:
		return fmt.Errorf("either source or set and relation is required")
	case inline && (s.Set == "" || s.Relation == ""):
		return fmt.Errorf("inline relations need both set and relation")
	}

	if s.Expect.isEmpty() {
		return fmt.Errorf("expect must state at least one expectation")
	}

	switch s.Expect.Error {
	case "", ExpectSourceNotFound, ExpectMalformedInput:
	default:
		return fmt.Errorf("expect.error: unknown error kind %q", s.Expect.Error)
	}

	closures := map[string]*[][]string{
		"reflexive_closure":  s.Expect.ReflexiveClosure,
		"symmetric_closure":  s.Expect.SymmetricClosure,
		"transitive_closure": s.Expect.TransitiveClosure,
	}
	for name, pairs := range closures {
		if pairs == nil {
			continue
		}
		for i, p := range *pairs {
			if len(p) != 2 {
				return fmt.Errorf("expect.%s[%d]: pair must have 2 labels, got %d", name, i, len(p))
			}
		}
	}

	return nil
}
