package encounter

import (
	"reflect"
	"testing"
)

func TestDecodeAntecedentsTotality(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t  "},
		{"not json", "definitely not json"},
		{"truncated json", `{"salud": {"Diabetes": tru`},
		{"empty object", "{}"},
		{"wrong shape", `{"salud": "yes"}`},
		{"unknown fields only", `{"foo": {"bar": true}}`},
		{"array", `[1,2,3]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeAntecedents(tt.raw); got != nil {
				t.Errorf("DecodeAntecedents(%q) = %+v, want nil", tt.raw, got)
			}
		})
	}
}

func TestDecodeAntecedentsValid(t *testing.T) {
	a := DecodeAntecedents(`{"salud": {"Diabetes": true, "Otra": false}, "saludOther": "nota"}`)
	if a == nil {
		t.Fatal("expected a decoded checklist")
	}
	if !a.Salud["Diabetes"] {
		t.Error("Diabetes should be checked")
	}
	if a.SaludOther != "nota" {
		t.Errorf("SaludOther = %q, want %q", a.SaludOther, "nota")
	}
	if a.Sintomas != nil {
		t.Error("absent sections should stay nil")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	orig := DefaultAntecedents()
	orig.Antecedentes["Migraña"] = true
	orig.SaludOcular["Queratocono"] = true
	orig.AntecedentesOther = "sensibilidad a la luz"

	encoded, err := EncodeAntecedents(orig)
	if err != nil {
		t.Fatal(err)
	}

	decoded := DecodeAntecedents(encoded)
	if decoded == nil {
		t.Fatal("round trip decoded to nil")
	}
	if !reflect.DeepEqual(orig, decoded) {
		t.Errorf("round trip mismatch:\n orig: %+v\n got:  %+v", orig, decoded)
	}
}

func TestDecodeIgnoresExtraFields(t *testing.T) {
	a := DecodeAntecedents(`{"salud": {"Diabetes": true}, "legacyField": 42}`)
	if a == nil || !a.Salud["Diabetes"] {
		t.Error("unknown sibling fields must not break decoding")
	}
}
