package coverart

import (
	"errors"
	"testing"
)

func TestCompose(t *testing.T) {
	cells := []string{"a", "b", "c", "d", "e", "f"}

	block, err := Compose(cells, 3)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if block != "abc\ndef" {
		t.Errorf("Expected %q, got %q", "abc\ndef", block)
	}
	if block.Height() != 2 || block.Width() != 3 {
		t.Errorf("Expected 3x2, got %dx%d", block.Width(), block.Height())
	}

	block, err = Compose(cells, 6)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if block != "abcdef" {
		t.Errorf("Expected a single row, got %q", block)
	}
}

func TestComposeRejectsPartialRows(t *testing.T) {
	if _, err := Compose([]string{"a", "b", "c"}, 2); err == nil {
		t.Error("Expected an error for a partial last row")
	}

	_, err := Compose([]string{"a"}, 0)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("Expected *ConfigError for zero width, got %v", err)
	}
}

func TestComposeEmpty(t *testing.T) {
	block, err := Compose(nil, 4)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if block != "" || block.Rows() != nil || block.Width() != 0 {
		t.Errorf("Expected an empty block, got %q", block)
	}
}

func TestBlockPlain(t *testing.T) {
	cells := []string{
		"\x1b[38;2;1;2;3mB\x1b[0m", " ",
		"\x1b[38;2;255;255;255m \x1b[0m", "\x1b[38;2;9;9;9m.\x1b[0m",
	}
	block, err := Compose(cells, 2)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if got := block.Plain(); got != "B \n ." {
		t.Errorf("Expected escapes stripped, got %q", got)
	}
	if block.Width() != 2 {
		t.Errorf("Width should ignore escape sequences, got %d", block.Width())
	}
}
