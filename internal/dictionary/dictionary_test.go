package dictionary

import (
	"strconv"
	"strings"
	"testing"
)

func buildWordList(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString("word")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestLoadAcceptsExactly2048Words(t *testing.T) {
	d, err := Load(strings.NewReader(buildWordList(WordCount)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Len() != WordCount {
		t.Fatalf("Len() = %d, want %d", d.Len(), WordCount)
	}
}

func TestLoadRejectsWrongCount(t *testing.T) {
	if _, err := Load(strings.NewReader(buildWordList(2047))); err == nil {
		t.Fatal("expected error for too few words")
	}
	if _, err := Load(strings.NewReader(buildWordList(2049))); err == nil {
		t.Fatal("expected error for too many words")
	}
}

func TestLoadRejectsDuplicates(t *testing.T) {
	list := buildWordList(WordCount - 1) + "word0\n"
	if _, err := Load(strings.NewReader(list)); err == nil {
		t.Fatal("expected error for duplicate word")
	}
}

func TestLoadTrimsWhitespaceAndSkipsBlankLines(t *testing.T) {
	list := "\r\n" + buildWordList(WordCount) + "\n\n"
	list = strings.ReplaceAll(list, "word0\n", "  word0  \r\n")
	d, err := Load(strings.NewReader(list))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	word, err := d.WordOfCode(0)
	if err != nil {
		t.Fatalf("WordOfCode(0): %v", err)
	}
	if word != "word0" {
		t.Fatalf("WordOfCode(0) = %q, want %q", word, "word0")
	}
}

func TestWordOfCodeAndCodeOfWordAreInverse(t *testing.T) {
	d, err := Load(strings.NewReader(buildWordList(WordCount)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for code := uint16(0); code < WordCount; code++ {
		word, err := d.WordOfCode(code)
		if err != nil {
			t.Fatalf("WordOfCode(%d): %v", code, err)
		}
		got, err := d.CodeOfWord(word)
		if err != nil {
			t.Fatalf("CodeOfWord(%q): %v", word, err)
		}
		if got != code {
			t.Fatalf("CodeOfWord(WordOfCode(%d)) = %d, want %d", code, got, code)
		}
	}
}

func TestCodeOfWordUnknown(t *testing.T) {
	d, err := Load(strings.NewReader(buildWordList(WordCount)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	_, err = d.CodeOfWord("notaword")
	if err == nil {
		t.Fatal("expected error for unknown word")
	}
	var unknownErr *ErrUnknownWord
	if !asErrUnknownWord(err, &unknownErr) {
		t.Fatalf("error = %v, want *ErrUnknownWord", err)
	}
}

func asErrUnknownWord(err error, target **ErrUnknownWord) bool {
	if e, ok := err.(*ErrUnknownWord); ok {
		*target = e
		return true
	}
	return false
}

func TestWordOfCodeOutOfRange(t *testing.T) {
	d, err := Load(strings.NewReader(buildWordList(WordCount)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := d.WordOfCode(WordCount); err == nil {
		t.Fatal("expected error for out-of-range code")
	}
}

func TestCaseSensitivity(t *testing.T) {
	list := strings.Replace(buildWordList(WordCount), "word0\n", "Word0\n", 1)
	d, err := Load(strings.NewReader(list))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := d.CodeOfWord("word0"); err == nil {
		t.Fatal("expected lowercase lookup to miss a capitalized dictionary entry")
	}
	if _, err := d.CodeOfWord("Word0"); err != nil {
		t.Fatalf("CodeOfWord(Word0): %v", err)
	}
}
