package spaces

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Cardinality determines the cardinality of a number (discrete or continuous)
type Cardinality string

const (
	Continuous Cardinality = "Continuous"
	Discrete   Cardinality = "Discrete"
)

// Spec tells the shape and bounds of the actions in a space. Bounds are
// inclusive. A space with no legal actions has an upper bound below its
// lower bound.
type Spec struct {
	Shape      mat.Vector
	LowerBound mat.Vector
	UpperBound mat.Vector
	Cardinality
}

// NewSpec constructs a new action space specification. The bounds must
// have the same length as shape.
func NewSpec(shape, lowerBound, upperBound mat.Vector,
	cardinality Cardinality) Spec {
	if shape.Len() != lowerBound.Len() || shape.Len() != upperBound.Len() {
		panic(fmt.Sprintf("newSpec: bounds of length (%v, %v) do not match "+
			"shape of length %v", lowerBound.Len(), upperBound.Len(),
			shape.Len()))
	}
	return Spec{
		Shape:       shape,
		LowerBound:  lowerBound,
		UpperBound:  upperBound,
		Cardinality: cardinality,
	}
}

// Empty returns whether the spec admits no values, which is the case
// for a discrete space with no actions
func (s Spec) Empty() bool {
	for i := 0; i < s.LowerBound.Len(); i++ {
		if s.UpperBound.AtVec(i) < s.LowerBound.AtVec(i) {
			return true
		}
	}
	return false
}
