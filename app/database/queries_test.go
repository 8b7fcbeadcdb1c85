package database

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewID(t *testing.T) {
	id := newID()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected a valid uuid, got %q: %v", id, err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := newID()
		if seen[id] {
			t.Fatalf("expected ids to be unique, %q repeated", id)
		}
		seen[id] = true
	}
}
