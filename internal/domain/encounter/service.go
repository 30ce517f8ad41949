package encounter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateEncounter(ctx context.Context, enc *Encounter) error {
	if enc.CompanyID == uuid.Nil {
		return fmt.Errorf("company_id is required")
	}
	if enc.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if err := validateSeniority(enc); err != nil {
		return err
	}

	// New encounters start from the canonical checklist so the printed
	// form always shows the full option set.
	if strings.TrimSpace(enc.AntecedentesJSON) == "" {
		encoded, err := EncodeAntecedents(DefaultAntecedents())
		if err != nil {
			return fmt.Errorf("encode default antecedents: %w", err)
		}
		enc.AntecedentesJSON = encoded
	}

	return s.repo.Create(ctx, enc)
}

func (s *Service) GetEncounter(ctx context.Context, id uuid.UUID) (*Encounter, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateEncounter(ctx context.Context, enc *Encounter) error {
	if err := validateSeniority(enc); err != nil {
		return err
	}
	if raw := strings.TrimSpace(enc.AntecedentesJSON); raw != "" {
		// A blob that decodes to nothing would silently vanish from
		// every report; reject it at the door.
		if DecodeAntecedents(raw) == nil {
			return fmt.Errorf("antecedentes_json is not a valid checklist")
		}
	}
	return s.repo.Update(ctx, enc)
}

// CompleteEncounter stamps the visit as finished.
func (s *Service) CompleteEncounter(ctx context.Context, id uuid.UUID) error {
	enc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("encounter not found: %w", err)
	}
	if enc.CompletedAt != nil {
		return nil
	}
	now := time.Now().UTC()
	enc.CompletedAt = &now
	return s.repo.Update(ctx, enc)
}

func (s *Service) DeleteEncounter(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListEncounters(ctx context.Context, limit, offset int) ([]*Encounter, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListEncountersByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*Encounter, int, error) {
	return s.repo.ListByCompany(ctx, companyID, limit, offset)
}

func (s *Service) ListEncountersByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Encounter, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

func validateSeniority(enc *Encounter) error {
	for _, v := range []*int{enc.SeniorityYears, enc.SeniorityMonths, enc.SeniorityWeeks} {
		if v != nil && *v < 0 {
			return fmt.Errorf("seniority values must be non-negative")
		}
	}
	return nil
}
