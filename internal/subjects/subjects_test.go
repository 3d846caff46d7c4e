package subjects

import "testing"

func TestDefaultIsValid(t *testing.T) {
	if !Valid(Default) {
		t.Errorf("default subject %q missing from catalog", Default)
	}
}

func TestValid(t *testing.T) {
	if !Valid("Mathematics") {
		t.Error("Mathematics should be a known subject")
	}
	if Valid("Astrology") {
		t.Error("unknown subject accepted")
	}
	if Valid("") {
		t.Error("empty subject accepted")
	}
}

func TestAllCopiesCatalog(t *testing.T) {
	a := All()
	a[0].Name = "mutated"
	if All()[0].Name == "mutated" {
		t.Error("All() should return a copy")
	}
}

func TestNamesMatchCatalog(t *testing.T) {
	names := Names()
	all := All()
	if len(names) != len(all) {
		t.Fatalf("length mismatch: %d vs %d", len(names), len(all))
	}
	for i, s := range all {
		if names[i] != s.Name {
			t.Errorf("names[%d] = %q, want %q", i, names[i], s.Name)
		}
	}
}
