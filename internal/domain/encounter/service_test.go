package encounter

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
)

// -- Mock Repository --

type mockRepo struct {
	encounters map[uuid.UUID]*Encounter
}

func newMockRepo() *mockRepo {
	return &mockRepo{encounters: make(map[uuid.UUID]*Encounter)}
}

func (m *mockRepo) Create(_ context.Context, enc *Encounter) error {
	enc.ID = uuid.New()
	enc.CreatedAt = time.Now()
	enc.UpdatedAt = time.Now()
	m.encounters[enc.ID] = enc
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Encounter, error) {
	enc, ok := m.encounters[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return enc, nil
}

func (m *mockRepo) Update(_ context.Context, enc *Encounter) error {
	m.encounters[enc.ID] = enc
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.encounters, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Encounter, int, error) {
	var result []*Encounter
	for _, enc := range m.encounters {
		result = append(result, enc)
	}
	return result, len(result), nil
}

func (m *mockRepo) ListByCompany(_ context.Context, companyID uuid.UUID, limit, offset int) ([]*Encounter, int, error) {
	var result []*Encounter
	for _, enc := range m.encounters {
		if enc.CompanyID == companyID {
			result = append(result, enc)
		}
	}
	return result, len(result), nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*Encounter, int, error) {
	var result []*Encounter
	for _, enc := range m.encounters {
		if enc.PatientID == patientID {
			result = append(result, enc)
		}
	}
	return result, len(result), nil
}

func (m *mockRepo) ListAllByCompany(_ context.Context, companyID uuid.UUID, from, to *time.Time) ([]*Encounter, error) {
	var result []*Encounter
	for _, enc := range m.encounters {
		if enc.CompanyID != companyID {
			continue
		}
		if from != nil && enc.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && !enc.CreatedAt.Before(*to) {
			continue
		}
		result = append(result, enc)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

// -- Tests --

func newTestService() *Service {
	return NewService(newMockRepo())
}

func TestCreateEncounter(t *testing.T) {
	svc := newTestService()

	enc := &Encounter{
		CompanyID: uuid.New(),
		PatientID: uuid.New(),
	}
	if err := svc.CreateEncounter(context.Background(), enc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enc.ID == uuid.Nil {
		t.Error("expected an assigned id")
	}
	if DecodeAntecedents(enc.AntecedentesJSON) == nil {
		t.Error("new encounters should carry the default checklist")
	}
}

func TestCreateEncounterValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if err := svc.CreateEncounter(ctx, &Encounter{PatientID: uuid.New()}); err == nil {
		t.Error("expected error for missing company_id")
	}
	if err := svc.CreateEncounter(ctx, &Encounter{CompanyID: uuid.New()}); err == nil {
		t.Error("expected error for missing patient_id")
	}

	neg := -1
	err := svc.CreateEncounter(ctx, &Encounter{
		CompanyID:      uuid.New(),
		PatientID:      uuid.New(),
		SeniorityYears: &neg,
	})
	if err == nil {
		t.Error("expected error for negative seniority")
	}
}

func TestCreateEncounterKeepsProvidedChecklist(t *testing.T) {
	svc := newTestService()

	raw := `{"salud": {"Diabetes": true}}`
	enc := &Encounter{
		CompanyID:        uuid.New(),
		PatientID:        uuid.New(),
		AntecedentesJSON: raw,
	}
	if err := svc.CreateEncounter(context.Background(), enc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enc.AntecedentesJSON != raw {
		t.Errorf("checklist was rewritten: %q", enc.AntecedentesJSON)
	}
}

func TestUpdateEncounterRejectsBadChecklist(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	enc := &Encounter{CompanyID: uuid.New(), PatientID: uuid.New()}
	if err := svc.CreateEncounter(ctx, enc); err != nil {
		t.Fatal(err)
	}

	enc.AntecedentesJSON = "not json at all"
	if err := svc.UpdateEncounter(ctx, enc); err == nil {
		t.Error("expected error for malformed checklist blob")
	}
}

func TestCompleteEncounter(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	enc := &Encounter{CompanyID: uuid.New(), PatientID: uuid.New()}
	if err := svc.CreateEncounter(ctx, enc); err != nil {
		t.Fatal(err)
	}

	if err := svc.CompleteEncounter(ctx, enc.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := svc.GetEncounter(ctx, enc.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.CompletedAt == nil {
		t.Fatal("expected completed_at to be set")
	}

	// Completing again keeps the original stamp.
	first := *got.CompletedAt
	if err := svc.CompleteEncounter(ctx, enc.ID); err != nil {
		t.Fatal(err)
	}
	got, _ = svc.GetEncounter(ctx, enc.ID)
	if !got.CompletedAt.Equal(first) {
		t.Error("completed_at should not move on repeat completion")
	}
}

func TestListEncountersByCompany(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	companyID := uuid.New()
	for i := 0; i < 3; i++ {
		enc := &Encounter{CompanyID: companyID, PatientID: uuid.New()}
		if err := svc.CreateEncounter(ctx, enc); err != nil {
			t.Fatal(err)
		}
	}
	other := &Encounter{CompanyID: uuid.New(), PatientID: uuid.New()}
	if err := svc.CreateEncounter(ctx, other); err != nil {
		t.Fatal(err)
	}

	encs, total, err := svc.ListEncountersByCompany(ctx, companyID, 20, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || len(encs) != 3 {
		t.Errorf("expected 3 encounters, got total=%d len=%d", total, len(encs))
	}
}
