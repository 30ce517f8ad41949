package encounter

import "strings"

// OtherOptionKey is the generic catch-all choice present in every checklist
// section. It is excluded from statistics because it carries no clinical
// signal on its own.
const OtherOptionKey = "Otra"

// Antecedents is the clinical checklist captured during intake. Each section
// is a set of named yes/no options plus a free-text complement. The JSON
// field names match the blob stored on the encounter row, so historical
// records decode unchanged.
type Antecedents struct {
	Antecedentes      map[string]bool `json:"antecedentes,omitempty"`
	AntecedentesOther string          `json:"antecedentesOther,omitempty"`

	Sintomas      map[string]bool `json:"sintomas,omitempty"`
	SintomasOther string          `json:"sintomasOther,omitempty"`

	Cirugias      map[string]bool `json:"cirugias,omitempty"`
	CirugiasOther string          `json:"cirugiasOther,omitempty"`

	Conjuntivitis      map[string]bool `json:"conjuntivitis,omitempty"`
	ConjuntivitisOther string          `json:"conjuntivitisOther,omitempty"`

	Computadora      map[string]bool `json:"computadora,omitempty"`
	ComputadoraOther string          `json:"computadoraOther,omitempty"`

	Anexos      map[string]bool `json:"anexos,omitempty"`
	AnexosOther string          `json:"anexosOther,omitempty"`

	Salud      map[string]bool `json:"salud,omitempty"`
	SaludOther string          `json:"saludOther,omitempty"`

	SaludOcular      map[string]bool `json:"saludOcular,omitempty"`
	SaludOcularOther string          `json:"saludOcularOther,omitempty"`

	Consultas      map[string]bool `json:"consultas,omitempty"`
	ConsultasOther string          `json:"consultasOther,omitempty"`
}

// Sections returns the nine checklist maps in canonical order.
func (a *Antecedents) Sections() []map[string]bool {
	return []map[string]bool{
		a.Antecedentes,
		a.Sintomas,
		a.Cirugias,
		a.Conjuntivitis,
		a.Computadora,
		a.Anexos,
		a.Salud,
		a.SaludOcular,
		a.Consultas,
	}
}

// EnabledKeys returns every option marked true in any section. The generic
// "Otra" option is skipped unless includeOther is set.
func (a *Antecedents) EnabledKeys(includeOther bool) map[string]bool {
	set := make(map[string]bool)
	for _, section := range a.Sections() {
		for key, on := range section {
			if !on {
				continue
			}
			if !includeOther && strings.EqualFold(strings.TrimSpace(key), OtherOptionKey) {
				continue
			}
			set[key] = true
		}
	}
	return set
}

// HasKeyEnabled reports whether the trimmed key is marked true in any
// section.
func (a *Antecedents) HasKeyEnabled(key string) bool {
	k := strings.TrimSpace(key)
	if k == "" {
		return false
	}
	for _, section := range a.Sections() {
		if section[k] {
			return true
		}
	}
	return false
}

// DefaultAntecedents returns the canonical intake checklist with every
// option unchecked.
func DefaultAntecedents() *Antecedents {
	return &Antecedents{
		Antecedentes: unchecked(
			"Alergia a algun medicamento",
			"Toma algun medicamento",
			"Dolor de Cabeza",
			"Migraña",
			"Comezon",
			"Ardor",
			"Lagrimeo",
			"Lagaña",
			"Manchas o puntos negros",
			"Cuerpo Extraño",
			OtherOptionKey,
		),
		Sintomas: unchecked(
			"Ojo flojo",
			"Ojo Rojo",
			"Ojo seco",
			"Pinguecula",
			"Pterigion",
			OtherOptionKey,
		),
		Cirugias: unchecked(
			"Cirujia Refractiva",
			"Cirujia de catarata",
			OtherOptionKey,
		),
		Conjuntivitis: unchecked(
			"Alergias",
			"Bacterianas",
			"Virales",
			"Hongos",
			OtherOptionKey,
		),
		Computadora: unchecked(
			"Fatiga Ocular",
			"Molestia a la luz solar",
			"Molestia a los reflejos",
			OtherOptionKey,
		),
		Anexos: unchecked(
			"Cejas",
			"Pestañas superiores",
			"Pestañas inferiores",
			"Parpado superior",
			"Parpado inferior",
			OtherOptionKey,
		),
		Salud: unchecked(
			"Diabetes",
			"Hipertension",
			"Hipotension",
			"Tiroides",
			"Embarazo",
			OtherOptionKey,
		),
		SaludOcular: unchecked(
			"Afaco",
			"Carnosidad",
			"Catarata",
			"Lefaritis",
			"Degeneracon Ocular",
			"Desprendimiento de Retina",
			"Estravismo",
			"Glaucoma",
			"Queratocono",
			"Retinopatia diabetica",
			OtherOptionKey,
		),
		Consultas: unchecked(
			"Optometria",
			"Oftalmologica",
			"Medico general",
			OtherOptionKey,
		),
	}
}

func unchecked(keys ...string) map[string]bool {
	m := make(map[string]bool, len(keys))
	for _, k := range keys {
		m[k] = false
	}
	return m
}
