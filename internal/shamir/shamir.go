// Package shamir implements the array-generalized Shamir secret sharing
// engine: splitting and reconstructing a byte array by running one
// independent scalar Shamir scheme per byte position, built on the
// constant-time internal/field and internal/polynomial packages instead of
// a log/antilog table.
package shamir

import (
	"io"

	"github.com/seedshard/seedshard/internal/field"
	"github.com/seedshard/seedshard/internal/polynomial"
)

// Share is one labeled point of a split byte array: Value[i] is the
// evaluation at x = ID of the i-th byte's independent polynomial.
type Share struct {
	ID    byte
	Value []byte
}

// Split runs one independent scalar Shamir split per byte of secret, each
// with its own freshly sampled degree-(t-1) polynomial, and returns
// the n shares for ids 1..=n sorted by ascending id. It requires
// 1 <= t <= n <= 255.
func Split(secret []byte, n, t int, rng io.Reader) ([]Share, error) {
	if n < 1 || n > 255 || t < 1 || t > n {
		return nil, &InvalidThresholdError{N: n, T: t}
	}

	polys := make([]polynomial.Polynomial, len(secret))
	for i, b := range secret {
		p, err := polynomial.Random(field.Element(b), t-1, rng)
		if err != nil {
			return nil, err
		}
		polys[i] = p
	}
	defer func() {
		for _, p := range polys {
			p.Zero()
		}
	}()

	shares := make([]Share, n)
	for idx := 0; idx < n; idx++ {
		id := byte(idx + 1)
		value := make([]byte, len(secret))
		x := field.Element(id)
		for i, p := range polys {
			value[i] = byte(p.Evaluate(x))
		}
		shares[idx] = Share{ID: id, Value: value}
	}

	return shares, nil
}

// Reconstruct recovers the original byte array from shares by independent
// element-wise Lagrange interpolation at x = 0. It requires at least one
// share, rejects an id of 0 and duplicate ids, and requires every share to
// have the same byte length. It tolerates any non-empty, well-formed input:
// if fewer than the original threshold's worth of correct shares are
// supplied, it returns a deterministic but incorrect result, exactly as
// spec'd — detecting that is left to the caller, not this engine.
func Reconstruct(shares []Share) ([]byte, error) {
	if len(shares) == 0 {
		return nil, &EmptyShareSetError{}
	}

	seen := make(map[byte]bool, len(shares))
	for _, s := range shares {
		if s.ID == 0 {
			return nil, &DegenerateShareError{Reason: "share id 0 is reserved for the secret"}
		}
		if seen[s.ID] {
			return nil, &DegenerateShareError{Reason: "duplicate share id"}
		}
		seen[s.ID] = true
	}

	width := len(shares[0].Value)
	for _, s := range shares[1:] {
		if len(s.Value) != width {
			return nil, &LengthMismatchError{Want: width, Got: len(s.Value)}
		}
	}

	secret := make([]byte, width)
	for byteIdx := 0; byteIdx < width; byteIdx++ {
		var y field.Element
		for i, si := range shares {
			xi := field.Element(si.ID)
			yi := field.Element(si.Value[byteIdx])

			var li field.Element = field.One
			for j, sj := range shares {
				if i == j {
					continue
				}
				xj := field.Element(sj.ID)
				// xi - xj == xi + xj in GF(2^n).
				numerator := xj
				denominator := field.Add(xi, xj)
				term, err := field.Div(numerator, denominator)
				if err != nil {
					return nil, &DegenerateShareError{Reason: "duplicate share id"}
				}
				li = field.Mul(li, term)
			}
			y = field.Add(y, field.Mul(li, yi))
		}
		secret[byteIdx] = byte(y)
	}

	return secret, nil
}
