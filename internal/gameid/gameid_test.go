package gameid

import (
	"strings"
	"testing"
	"time"
)

// fixedRandSource returns a constant for deterministic tests
type fixedRandSource struct {
	value int
}

func (f fixedRandSource) Intn(n int) int {
	return f.value % n
}

func TestGenerateFormat(t *testing.T) {
	id := Generate()

	if len(id) != 16 {
		t.Errorf("Expected 16 character ID, got %d: %s", len(id), id)
	}

	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			t.Errorf("Invalid character %c at position %d in %s", char, i, id)
		}
	}
}

func TestGenerateUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := Generate()
		if seen[id] {
			t.Fatalf("Duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestGenerateTimeSortable(t *testing.T) {
	first := Generate()
	time.Sleep(2 * time.Millisecond)
	second := Generate()

	if first >= second {
		t.Errorf("Later ID should sort after earlier: %s >= %s", first, second)
	}
}

func TestGenerateWithRandSourceDeterministicTail(t *testing.T) {
	a := GenerateWithRandSource(fixedRandSource{value: 7})
	b := GenerateWithRandSource(fixedRandSource{value: 7})

	// Random tails match; timestamps may differ in the prefix
	if a[10:] != b[10:] {
		t.Errorf("Expected matching random tails, got %s and %s", a[10:], b[10:])
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(Generate()); err != nil {
		t.Errorf("Generated ID failed validation: %v", err)
	}

	if err := Validate("short"); err == nil {
		t.Error("Expected error for short ID")
	}

	if err := Validate("UPPERCASE0123456"); err == nil {
		t.Error("Expected error for invalid characters")
	}
}
