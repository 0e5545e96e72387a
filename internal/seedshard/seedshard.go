// Package seedshard exposes the three public operations the outer CLI
// drives: Split, Reconstruct, and Check. It is the facade described in
// spec §4.8, composing internal/mnemonic and internal/shamir so that
// callers never touch field elements or polynomials directly.
package seedshard

import (
	"fmt"
	"io"

	"github.com/seedshard/seedshard/internal/dictionary"
	"github.com/seedshard/seedshard/internal/mnemonic"
	"github.com/seedshard/seedshard/internal/secure"
	"github.com/seedshard/seedshard/internal/shamir"
)

// LabeledShare pairs a share's public integer id with its mnemonic
// encoding. The id travels out-of-band of the words per spec §6: it is not
// recoverable from the mnemonic alone, so callers must record it alongside
// the words.
type LabeledShare struct {
	ID       byte
	Mnemonic string
}

// Split validates originalMnemonic, splits its underlying 32-byte entropy
// into n shares requiring t to reconstruct, and returns each share as a
// LabeledShare sorted by ascending id. rng must be a cryptographically
// secure source of randomness.
func Split(originalMnemonic string, n, t int, dict *dictionary.Dictionary, rng io.Reader) ([]LabeledShare, error) {
	m, err := mnemonic.Parse(originalMnemonic, dict)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	shares, err := shamir.Split(m.Entropy[:], n, t, rng)
	defer secure.Zero(m.Entropy[:])
	if err != nil {
		return nil, err
	}

	out := make([]LabeledShare, len(shares))
	for i, s := range shares {
		var entropy [mnemonic.EntropyBytes]byte
		copy(entropy[:], s.Value)
		shareMnemonic := mnemonic.New(entropy)
		words, err := shareMnemonic.Emit(dict)
		secure.Zero(entropy[:])
		secure.Zero(shareMnemonic.Entropy[:])
		secure.Zero(s.Value)
		if err != nil {
			return nil, err
		}
		out[i] = LabeledShare{ID: s.ID, Mnemonic: words}
	}

	return out, nil
}

// Reconstruct parses and validates each of the supplied shares' own
// checksums, interpolates the original entropy, and emits it as a
// Mnemonic. It requires at least one share; the result is trustworthy only
// when at least the original threshold's worth of correct, distinct-id
// shares were supplied — Reconstruct cannot detect a shortfall: the emitted
// mnemonic's checksum is computed from the interpolated entropy, so it is
// always self-consistent.
func Reconstruct(shares []LabeledShare, dict *dictionary.Dictionary) (string, error) {
	if len(shares) == 0 {
		return "", &shamir.EmptyShareSetError{}
	}

	parsed := make([]shamir.Share, len(shares))
	shareEntropy := make([][mnemonic.EntropyBytes]byte, len(shares))
	defer func() {
		for i := range shareEntropy {
			secure.Zero(shareEntropy[i][:])
		}
	}()

	for i, s := range shares {
		m, err := mnemonic.Parse(s.Mnemonic, dict)
		if err != nil {
			return "", fmt.Errorf("share id %d: %w", s.ID, err)
		}
		if err := m.Validate(); err != nil {
			return "", fmt.Errorf("share id %d: %w", s.ID, err)
		}
		shareEntropy[i] = m.Entropy
		parsed[i] = shamir.Share{ID: s.ID, Value: shareEntropy[i][:]}
	}

	secret, err := shamir.Reconstruct(parsed)
	if err != nil {
		return "", err
	}

	var entropy [mnemonic.EntropyBytes]byte
	copy(entropy[:], secret)
	secure.Zero(secret)
	result := mnemonic.New(entropy)
	secure.Zero(entropy[:])
	words, err := result.Emit(dict)
	secure.Zero(result.Entropy[:])
	return words, err
}

// Check parses and validates a mnemonic string, reporting whether it is a
// self-consistent 24-word mnemonic.
func Check(m string, dict *dictionary.Dictionary) error {
	parsed, err := mnemonic.Parse(m, dict)
	if err != nil {
		return err
	}
	return parsed.Validate()
}
