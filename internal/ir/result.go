package ir

// Result is the bundle the engine returns for one relation.
//
// EquivalenceRelation and PartialOrdering are derived from the six property
// flags. Closures are never nil.
type Result struct {
	Reflexive     bool `json:"reflexive"`
	Irreflexive   bool `json:"irreflexive"`
	Symmetric     bool `json:"symmetric"`
	Asymmetric    bool `json:"asymmetric"`
	Antisymmetric bool `json:"antisymmetric"`
	Transitive    bool `json:"transitive"`

	EquivalenceRelation bool `json:"equivalence_relation"`
	PartialOrdering     bool `json:"partial_ordering"`

	ReflexiveClosure  []Pair `json:"reflexive_closure"`
	SymmetricClosure  []Pair `json:"symmetric_closure"`
	TransitiveClosure []Pair `json:"transitive_closure"`
}

// Property names in display order.
const (
	PropReflexive           = "Reflexive"
	PropIrreflexive         = "Irreflexive"
	PropSymmetric           = "Symmetric"
	PropAsymmetric          = "Asymmetric"
	PropAntisymmetric       = "Antisymmetric"
	PropTransitive          = "Transitive"
	PropEquivalenceRelation = "Equivalence Relation"
	PropPartialOrdering     = "Partial Ordering"
)

// PropertyRow is a single labeled boolean of a Result.
type PropertyRow struct {
	Name  string
	Value bool
}

// Properties returns the eight flags in display order.
func (r Result) Properties() []PropertyRow {
	return []PropertyRow{
		{PropReflexive, r.Reflexive},
		{PropIrreflexive, r.Irreflexive},
		{PropSymmetric, r.Symmetric},
		{PropAsymmetric, r.Asymmetric},
		{PropAntisymmetric, r.Antisymmetric},
		{PropTransitive, r.Transitive},
		{PropEquivalenceRelation, r.EquivalenceRelation},
		{PropPartialOrdering, r.PartialOrdering},
	}
}
