package membership

import "fmt"

// Triangle is a triangular membership function with left foot a, peak b and
// right foot c. It is a comparable value: two triangles are equal iff their
// parameters match exactly. A degenerate foot (a == b or b == c) gives a
// shoulder shape whose vertical edge still peaks at exactly 1.
type Triangle struct {
	a, b, c float64
}

// NewTriangle builds a triangular membership function over [a, c] peaking
// at b. The parameters must be ordered a <= b <= c.
func NewTriangle(a, b, c float64) (Triangle, error) {
	if a > b || b > c {
		return Triangle{}, fmt.Errorf("triangle parameters must be ordered a <= b <= c, got (%g, %g, %g)", a, b, c)
	}
	return Triangle{a: a, b: b, c: c}, nil
}

// Apply returns the membership degree of x: 0 outside [a, c], exactly 1 at
// the peak, linear on the edges. The edge divisions must stay in this exact
// operand order; degrees feed bit-stable learning-rate arithmetic.
func (t Triangle) Apply(x float64) float64 {
	switch {
	case x < t.a || x > t.c:
		return 0
	case x == t.b:
		return 1
	case x < t.b:
		return (x - t.a) / (t.b - t.a)
	default:
		return (t.c - x) / (t.c - t.b)
	}
}

// A returns the left foot.
func (t Triangle) A() float64 { return t.a }

// B returns the peak.
func (t Triangle) B() float64 { return t.b }

// C returns the right foot.
func (t Triangle) C() float64 { return t.c }

func (t Triangle) String() string {
	return fmt.Sprintf("(%g, %g, %g)", t.a, t.b, t.c)
}
