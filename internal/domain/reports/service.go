package reports

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/visionwow/visionwow/internal/domain/company"
	"github.com/visionwow/visionwow/internal/domain/encounter"
	"github.com/visionwow/visionwow/internal/domain/patient"
	"github.com/visionwow/visionwow/internal/pdf"
	"github.com/visionwow/visionwow/internal/report"
)

// Filters narrows the encounter set a report is built from. Keys are
// checklist options combined with OR: an encounter matches when any key is
// checked.
type Filters struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
	Keys []string   `json:"keys,omitempty"`
}

// Document is a generated export ready to hand to the client.
type Document struct {
	FileName string
	MIME     string
	Data     []byte
}

type Service struct {
	companies  company.Repository
	patients   patient.Repository
	encounters encounter.Repository

	logoPath  string
	exportDir string
	log       zerolog.Logger
}

func NewService(companies company.Repository, patients patient.Repository, encounters encounter.Repository, logoPath, exportDir string, log zerolog.Logger) *Service {
	return &Service{
		companies:  companies,
		patients:   patients,
		encounters: encounters,
		logoPath:   logoPath,
		exportDir:  exportDir,
		log:        log,
	}
}

// Summary computes the report figures for a company without rendering.
func (s *Service) Summary(ctx context.Context, companyID uuid.UUID, f Filters) (*report.Summary, error) {
	encs, err := s.filteredEncounters(ctx, companyID, f)
	if err != nil {
		return nil, err
	}
	sum := report.ComputeSummary(encs, f.Keys)
	return &sum, nil
}

// GenerateReport renders the corporate report for a company. format is
// "pdf" or "csv"; sections picks the cards to draw (zero value means all).
// The document is also persisted under the export directory.
func (s *Service) GenerateReport(ctx context.Context, companyID uuid.UUID, f Filters, format string, sections report.Sections) (*Document, error) {
	co, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("company not found: %w", err)
	}
	encs, err := s.filteredEncounters(ctx, companyID, f)
	if err != nil {
		return nil, err
	}
	entries, err := s.buildEntries(ctx, encs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var doc *Document
	switch format {
	case "", "pdf":
		sum := report.ComputeSummary(encs, f.Keys)
		w := pdf.NewWriter()
		report.GeneratePDF(w, sum, entries, report.Options{
			CompanyName:  co.Name,
			GeneratedAt:  now,
			From:         f.From,
			To:           f.To,
			SelectedKeys: f.Keys,
			Sections:     sections,
		})
		doc = &Document{
			FileName: reportFileName(co.Name, now, "pdf"),
			MIME:     "application/pdf",
			Data:     w.Bytes(),
		}
	case "csv":
		var buf bytes.Buffer
		if err := report.GenerateCSV(&buf, entries); err != nil {
			return nil, fmt.Errorf("write csv: %w", err)
		}
		doc = &Document{
			FileName: reportFileName(co.Name, now, "csv"),
			MIME:     "text/csv",
			Data:     buf.Bytes(),
		}
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}

	if err := s.persist(doc); err != nil {
		return nil, err
	}
	s.log.Info().
		Str("company", co.Name).
		Str("file", doc.FileName).
		Int("encounters", len(encs)).
		Msg("report generated")
	return doc, nil
}

// GenerateEncounterDocument renders the printable clinical history form for
// one visit.
func (s *Service) GenerateEncounterDocument(ctx context.Context, encounterID uuid.UUID) (*Document, error) {
	enc, err := s.encounters.GetByID(ctx, encounterID)
	if err != nil {
		return nil, fmt.Errorf("encounter not found: %w", err)
	}
	p, err := s.patients.GetByID(ctx, enc.PatientID)
	if err != nil {
		return nil, fmt.Errorf("patient not found: %w", err)
	}
	// The form carries the logo in its letterhead; fail before any drawing
	// rather than produce a branded document without it.
	logo, err := s.loadLogo()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	w := pdf.NewWriter()
	pdf.RenderEncounterDocument(w, enc, p, logo, now)

	doc := &Document{
		FileName: fmt.Sprintf("VisionWow_%s_%s_%s.pdf",
			safeName(p.FirstName), safeName(p.LastName), now.Format("02-01-2006")),
		MIME: "application/pdf",
		Data: w.Bytes(),
	}
	if err := s.persist(doc); err != nil {
		return nil, err
	}
	s.log.Info().
		Str("encounter", enc.ID.String()).
		Str("file", doc.FileName).
		Msg("encounter document generated")
	return doc, nil
}

func (s *Service) filteredEncounters(ctx context.Context, companyID uuid.UUID, f Filters) ([]*encounter.Encounter, error) {
	// The upper bound is inclusive by day: everything created before the
	// start of the following day matches.
	var to *time.Time
	if f.To != nil {
		t := f.To.AddDate(0, 0, 1)
		to = &t
	}
	encs, err := s.encounters.ListAllByCompany(ctx, companyID, f.From, to)
	if err != nil {
		return nil, err
	}
	if len(f.Keys) == 0 {
		return encs, nil
	}

	var out []*encounter.Encounter
	for _, enc := range encs {
		a := encounter.DecodeAntecedents(enc.AntecedentesJSON)
		if a == nil {
			continue
		}
		for _, key := range f.Keys {
			if a.HasKeyEnabled(key) {
				out = append(out, enc)
				break
			}
		}
	}
	return out, nil
}

func (s *Service) buildEntries(ctx context.Context, encs []*encounter.Encounter) ([]report.Entry, error) {
	ids := make([]uuid.UUID, 0, len(encs))
	seen := make(map[uuid.UUID]bool)
	for _, enc := range encs {
		if !seen[enc.PatientID] {
			seen[enc.PatientID] = true
			ids = append(ids, enc.PatientID)
		}
	}
	patients, err := s.patients.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]report.Entry, 0, len(encs))
	for _, enc := range encs {
		e := report.Entry{Enc: enc}
		if p, ok := patients[enc.PatientID]; ok {
			e.FirstName = p.FirstName
			e.LastName = p.LastName
			e.Sex = p.Sex
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (s *Service) loadLogo() (image.Image, error) {
	f, err := os.Open(s.logoPath)
	if err != nil {
		return nil, fmt.Errorf("open logo: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode logo: %w", err)
	}
	return img, nil
}

func (s *Service) persist(doc *Document) error {
	if s.exportDir == "" {
		return nil
	}
	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(s.exportDir, doc.FileName)
	if err := os.WriteFile(path, doc.Data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

func reportFileName(companyName string, now time.Time, ext string) string {
	return fmt.Sprintf("Reporte-%s-%d.%s", sanitizeFileName(companyName), now.Unix(), ext)
}

// sanitizeFileName replaces filesystem-hostile characters with dashes.
func sanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(`/\?%*|"<>:`, r) {
			return '-'
		}
		return r
	}, name)
}

// safeName makes a patient name part usable in a file name.
func safeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Paciente"
	}
	return strings.ReplaceAll(name, " ", "_")
}
