// Package assets embeds the default BIP-39 English wordlist shipped with
// the seedshard binary, so the CLI works out of the box without requiring
// a --dictionary-path flag.
package assets

import (
	_ "embed"
)

//go:embed bip39-en.txt
var englishWordlist []byte

// EnglishWordlist returns the bundled BIP-39 English wordlist, one word
// per line, in canonical index order.
func EnglishWordlist() []byte {
	return englishWordlist
}
