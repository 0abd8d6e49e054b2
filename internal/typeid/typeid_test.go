package typeid

import "testing"

func TestNewShapeIDValidates(t *testing.T) {
	id := NewShapeID()
	if err := Validate(id, PrefixShape); err != nil {
		t.Fatalf("expected shape id to validate: %v", err)
	}
	if err := Validate(id, PrefixLayer); err == nil {
		t.Errorf("expected prefix mismatch for %s", id)
	}
}

func TestIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewStyleID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	if err := Validate("not an id", PrefixPage); err == nil {
		t.Error("expected error for malformed id")
	}
}
