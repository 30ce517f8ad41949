package encounter

import (
	"encoding/json"
	"strings"
)

// DecodeAntecedents parses the stored checklist blob. It is total: blank
// input, malformed JSON, or JSON carrying none of the known sections all
// yield nil rather than an error, since historical rows hold blobs written
// by several app generations.
func DecodeAntecedents(raw string) *Antecedents {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	var a Antecedents
	if err := json.Unmarshal([]byte(trimmed), &a); err != nil {
		return nil
	}

	for _, section := range a.Sections() {
		if section != nil {
			return &a
		}
	}
	return nil
}

// EncodeAntecedents serializes the checklist so that DecodeAntecedents
// round-trips it to an equal value.
func EncodeAntecedents(a *Antecedents) (string, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
