package idgen

import (
	"testing"

	"github.com/oklog/ulid/v2"
)

func TestULIDGenerator(t *testing.T) {
	gen := NewULIDGenerator()

	first := gen.Generate()
	second := gen.Generate()

	if first == second {
		t.Fatalf("expected unique IDs, got %s twice", first)
	}

	for _, id := range []string{first, second} {
		if _, err := ulid.Parse(id); err != nil {
			t.Fatalf("expected valid ULID, got %q: %v", id, err)
		}
	}

	if first > second {
		t.Fatalf("expected monotonic IDs, got %s before %s", first, second)
	}
}
