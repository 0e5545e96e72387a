// Package polynomial implements degree-(t-1) univariate polynomials over
// GF(2^8), used by the Shamir engine to hide a secret as the constant term
// of a randomly drawn polynomial, evaluated via Horner's method on the
// field package's constant-time Element type.
package polynomial

import (
	"io"

	"github.com/seedshard/seedshard/internal/field"
)

// Polynomial is a degree-(t-1) polynomial over GF(2^8), stored low-degree
// coefficient first: Coefficients[0] is the constant term (the secret),
// Coefficients[i] is the coefficient of x^i.
type Polynomial struct {
	Coefficients []field.Element
}

// Random constructs a polynomial of the given degree whose constant term is
// secret and whose remaining degree coefficients are drawn independently
// and uniformly from the nonzero elements of GF(2^8), using rng as the
// source of randomness. degree must be >= 0; a degree-0 polynomial is the
// constant secret itself (threshold 1).
func Random(secret field.Element, degree int, rng io.Reader) (Polynomial, error) {
	coefficients := make([]field.Element, degree+1)
	coefficients[0] = secret

	for i := 1; i <= degree; i++ {
		c, err := field.RandomNonZero(rng)
		if err != nil {
			return Polynomial{}, err
		}
		coefficients[i] = c
	}

	return Polynomial{Coefficients: coefficients}, nil
}

// Evaluate computes f(x) using Horner's method: the coefficients are
// folded from highest degree to lowest, each step doing one constant-time
// multiply and one constant-time add, so evaluation time depends only on
// the polynomial's degree, never on the coefficient values.
func (p Polynomial) Evaluate(x field.Element) field.Element {
	var y field.Element
	for i := len(p.Coefficients) - 1; i >= 0; i-- {
		y = field.Add(field.Mul(y, x), p.Coefficients[i])
	}
	return y
}

// Degree returns the polynomial's degree (one less than its coefficient count).
func (p Polynomial) Degree() int {
	return len(p.Coefficients) - 1
}

// Zero overwrites the polynomial's coefficients, including the hidden
// secret at Coefficients[0], so the random polynomial generated inside a
// split does not linger in memory past its single use.
func (p Polynomial) Zero() {
	for i := range p.Coefficients {
		p.Coefficients[i] = field.Zero
	}
}
