// Package membership provides the fuzzy membership functions used by
// neo-fuzzy synapses. A membership function scores how strongly a crisp
// value belongs to a fuzzy set: 0 outside the support, up to 1 at the core.
package membership

// Function scores the degree of membership of x in a fuzzy set.
type Function interface {
	Apply(x float64) float64
}
