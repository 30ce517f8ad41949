package encounter

import (
	"strings"
	"testing"
)

func TestDefaultAntecedentsShape(t *testing.T) {
	a := DefaultAntecedents()

	sections := a.Sections()
	if len(sections) != 9 {
		t.Fatalf("expected 9 sections, got %d", len(sections))
	}
	for i, section := range sections {
		if len(section) == 0 {
			t.Errorf("section %d is empty", i)
		}
		if _, ok := section[OtherOptionKey]; !ok {
			t.Errorf("section %d is missing the %q option", i, OtherOptionKey)
		}
		for key, on := range section {
			if on {
				t.Errorf("section %d: option %q should start unchecked", i, key)
			}
		}
	}
}

func TestEnabledKeysExcludesOther(t *testing.T) {
	a := DefaultAntecedents()
	a.Salud["Diabetes"] = true
	a.Sintomas["Ojo seco"] = true
	a.Consultas[OtherOptionKey] = true

	keys := a.EnabledKeys(false)
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %d: %v", len(keys), keys)
	}
	if !keys["Diabetes"] || !keys["Ojo seco"] {
		t.Errorf("expected Diabetes and Ojo seco, got %v", keys)
	}

	withOther := a.EnabledKeys(true)
	if !withOther[OtherOptionKey] {
		t.Errorf("includeOther should surface %q", OtherOptionKey)
	}
}

func TestEnabledKeysSentinelCaseInsensitive(t *testing.T) {
	a := &Antecedents{
		Salud: map[string]bool{" otra ": true, "OTRA": true, "Diabetes": true},
	}
	keys := a.EnabledKeys(false)
	if len(keys) != 1 || !keys["Diabetes"] {
		t.Errorf("sentinel variants should be excluded, got %v", keys)
	}
}

func TestHasKeyEnabled(t *testing.T) {
	a := DefaultAntecedents()
	a.SaludOcular["Glaucoma"] = true

	tests := []struct {
		key  string
		want bool
	}{
		{"Glaucoma", true},
		{"  Glaucoma  ", true},
		{"glaucoma", false}, // lookup is exact after trimming
		{"Diabetes", false},
		{"", false},
		{"   ", false},
	}
	for _, tt := range tests {
		if got := a.HasKeyEnabled(tt.key); got != tt.want {
			t.Errorf("HasKeyEnabled(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestSectionNamesStayStable(t *testing.T) {
	encoded, err := EncodeAntecedents(DefaultAntecedents())
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{
		"antecedentes", "sintomas", "cirugias", "conjuntivitis",
		"computadora", "anexos", "salud", "saludOcular", "consultas",
	} {
		if !strings.Contains(encoded, `"`+name+`"`) {
			t.Errorf("encoded blob is missing section %q", name)
		}
	}
}
