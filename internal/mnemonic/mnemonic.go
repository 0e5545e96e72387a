// Package mnemonic implements the BIP-39-style 24-word encoding of a
// 256-bit entropy value plus its 8-bit checksum, built from scratch on top
// of internal/bitcodec and internal/dictionary rather than an external
// BIP-39 library (github.com/tyler-smith/go-bip39 is kept only as a
// cross-validation dependency in this package's tests).
package mnemonic

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/seedshard/seedshard/internal/bitcodec"
	"github.com/seedshard/seedshard/internal/dictionary"
)

// WordCount is the fixed number of words a mnemonic string must contain.
const WordCount = 24

// EntropyBytes is the fixed length of the entropy a mnemonic encodes: 256
// bits.
const EntropyBytes = 32

// ChecksumBits is the number of checksum bits appended to the entropy.
const ChecksumBits = 8

// MaxTypoDistance bounds how far a candidate word may be from an unknown
// token, by Levenshtein distance, before SuggestWord gives up rather than
// offer a misleading guess.
const MaxTypoDistance = 2

// Mnemonic pairs a 32-byte Entropy with its Checksum. A Mnemonic
// constructed through New or Parse is always self-consistent: its Checksum
// is always the correct checksum of its own Entropy.
type Mnemonic struct {
	Entropy  [EntropyBytes]byte
	Checksum byte
}

// WrongWordCountError reports that a mnemonic string did not split into
// exactly WordCount words.
type WrongWordCountError struct {
	Got int
}

func (e *WrongWordCountError) Error() string {
	return fmt.Sprintf("mnemonic: expected %d words, got %d", WordCount, e.Got)
}

// ChecksumMismatchError reports that a parsed mnemonic's declared checksum
// does not match the checksum computed from its entropy.
type ChecksumMismatchError struct {
	Declared byte
	Computed byte
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("mnemonic: checksum mismatch: declared 0x%02x, computed 0x%02x", e.Declared, e.Computed)
}

// computeChecksum returns the top ChecksumBits bits of SHA-256(entropy), as
// the high bits of a single byte.
func computeChecksum(entropy [EntropyBytes]byte) byte {
	sum := sha256.Sum256(entropy[:])
	return sum[0]
}

// New wraps a raw 32-byte entropy value, computing its checksum. The
// resulting Mnemonic is always self-consistent by construction: this is
// how a share's bytes become a mnemonic whose checksum certifies that
// specific share, not the original secret.
func New(entropy [EntropyBytes]byte) Mnemonic {
	return Mnemonic{Entropy: entropy, Checksum: computeChecksum(entropy)}
}

// Parse splits s on ASCII whitespace, maps each of the required WordCount
// words to its 11-bit code via dict, and reassembles the 264-bit stream
// into a 32-byte Entropy and an 8-bit declared Checksum. Parse does not
// validate the checksum; call Validate for that.
func Parse(s string, dict *dictionary.Dictionary) (Mnemonic, error) {
	words := strings.Fields(s)
	if len(words) != WordCount {
		return Mnemonic{}, &WrongWordCountError{Got: len(words)}
	}

	bits := make([]byte, 0, WordCount*11)
	for _, w := range words {
		code, err := dict.CodeOfWord(w)
		if err != nil {
			return Mnemonic{}, err
		}
		bits = append(bits, bitcodec.Uint11ToBits(code)...)
	}

	entropyBits := bits[:EntropyBytes*8]
	checksumBits := bits[EntropyBytes*8:]

	entropyBytes, err := bitcodec.BitsToBytes(entropyBits)
	if err != nil {
		return Mnemonic{}, err
	}
	checksumByte, err := bitcodec.BitsToBytes(checksumBits)
	if err != nil {
		return Mnemonic{}, err
	}

	var m Mnemonic
	copy(m.Entropy[:], entropyBytes)
	m.Checksum = checksumByte[0]
	return m, nil
}

// Validate reports whether m's declared Checksum matches the checksum
// computed from its Entropy.
func (m Mnemonic) Validate() error {
	computed := computeChecksum(m.Entropy)
	if computed != m.Checksum {
		return &ChecksumMismatchError{Declared: m.Checksum, Computed: computed}
	}
	return nil
}

// Emit renders m as 24 space-separated dictionary words: the 256 entropy
// bits followed by the 8 checksum bits, partitioned big-endian into 24
// groups of 11 bits.
func (m Mnemonic) Emit(dict *dictionary.Dictionary) (string, error) {
	bits := make([]byte, 0, WordCount*11)
	bits = append(bits, bitcodec.BytesToBits(m.Entropy[:])...)
	bits = append(bits, bitcodec.BytesToBits([]byte{m.Checksum})...)

	words := make([]string, WordCount)
	for i := 0; i < WordCount; i++ {
		code, err := bitcodec.BitsToUint11(bits[i*11 : i*11+11])
		if err != nil {
			return "", err
		}
		word, err := dict.WordOfCode(code)
		if err != nil {
			return "", err
		}
		words[i] = word
	}
	return strings.Join(words, " "), nil
}

// Normalize lowercases s and collapses runs of whitespace to single spaces,
// so that mnemonics with irregular spacing or inconsistent case still parse.
// List numbering is not stripped.
func Normalize(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	return strings.Join(fields, " ")
}

// SuggestWord returns the closest dictionary word to token by Levenshtein
// distance, for surfacing a "did you mean" hint when a mnemonic contains an
// unrecognized word. It returns ok=false if no dictionary word is within
// MaxTypoDistance.
func SuggestWord(token string, dict *dictionary.Dictionary) (suggestion string, ok bool) {
	best := MaxTypoDistance + 1
	for _, w := range dict.Words() {
		d := levenshtein.ComputeDistance(token, w)
		if d < best {
			best = d
			suggestion = w
		}
	}
	if best > MaxTypoDistance {
		return "", false
	}
	return suggestion, true
}
