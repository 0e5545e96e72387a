package cli

import (
	"bytes"
	"os"

	"github.com/seedshard/seedshard/assets"
	"github.com/seedshard/seedshard/internal/dictionary"
)

// loadDictionary opens the wordlist at path, or the bundled English
// wordlist when path is empty.
func loadDictionary(path string) (*dictionary.Dictionary, error) {
	if path == "" {
		return dictionary.Load(bytes.NewReader(assets.EnglishWordlist()))
	}

	// #nosec G304 -- dictionary path is an explicit CLI/config input
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return dictionary.Load(f)
}
