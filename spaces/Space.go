package spaces

// Space describes the set of legal actions of an environment
type Space interface {
	// Contains returns whether x is in the space
	Contains(x interface{}) bool

	// Spec returns the shape and bounds of values in the space
	Spec() Spec
}
