package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"nika-sop.backend/internal/domain/entities"
	domainerrors "nika-sop.backend/internal/domain/errors"
	"nika-sop.backend/internal/domain/repositories"
	"nika-sop.backend/internal/metrics"
)

// TextGenerator obtains generated text from the external provider
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// SOPUsecase handles quota-gated document generation, history and lead capture
type SOPUsecase struct {
	sopRepo   repositories.SOPRepository
	leadRepo  repositories.LeadRepository
	generator TextGenerator
	freeLimit int
}

// NewSOPUsecase creates a new SOP usecase
func NewSOPUsecase(
	sopRepo repositories.SOPRepository,
	leadRepo repositories.LeadRepository,
	generator TextGenerator,
	freeLimit int,
) *SOPUsecase {
	return &SOPUsecase{
		sopRepo:   sopRepo,
		leadRepo:  leadRepo,
		generator: generator,
		freeLimit: freeLimit,
	}
}

// FreeLimit returns the configured free-generation limit
func (u *SOPUsecase) FreeLimit() int {
	return u.freeLimit
}

// CreditsLeft derives the remaining free generations for an identity.
// Recomputed from the stored count on every call; floors at zero.
func (u *SOPUsecase) CreditsLeft(ctx context.Context, email string) (int, error) {
	count, err := u.sopRepo.CountByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	left := u.freeLimit - int(count)
	if left < 0 {
		left = 0
	}
	return left, nil
}

// Generate runs the credit-gated generation workflow: quota gate, input
// validation, prompt construction, one provider call, persistence.
// Anonymous callers (empty SessionEmail) skip both the gate and persistence.
func (u *SOPUsecase) Generate(ctx context.Context, input *entities.GenerateSOPInput) (string, error) {
	if input.SessionEmail != "" {
		// Read-then-write with no transaction around count+insert: two
		// near-simultaneous requests can both pass the gate. Known gap.
		count, err := u.sopRepo.CountByEmail(ctx, input.SessionEmail)
		if err != nil {
			return "", err
		}
		if count >= int64(u.freeLimit) {
			metrics.GenerationsTotal.WithLabelValues("quota_exceeded").Inc()
			return "", domainerrors.ErrQuotaExceeded
		}
	}

	if input.Empty() {
		return "", domainerrors.ErrEmptySubmission
	}
	if input.CVText == "" && (input.Name == "" || input.Field == "") {
		return "", domainerrors.ErrInvalidInput
	}

	prompt := buildPrompt(input)

	start := time.Now()
	text, err := u.generator.Generate(ctx, prompt)
	metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues("error").Inc()
		return "", err
	}
	metrics.GenerationsTotal.WithLabelValues("success").Inc()

	if input.SessionEmail != "" {
		sop := &entities.SOP{
			ID:        uuid.New(),
			UserEmail: input.SessionEmail,
			Body:      text,
			CreatedAt: time.Now(),
		}
		if err := u.sopRepo.Create(ctx, sop); err != nil {
			return "", err
		}
	}

	return text, nil
}

// ListSOPs lists previously generated documents, newest first
func (u *SOPUsecase) ListSOPs(ctx context.Context, email string) ([]*entities.SOP, error) {
	return u.sopRepo.ListByEmail(ctx, email)
}

// CaptureLead stores a name/email pair once per unique email
func (u *SOPUsecase) CaptureLead(ctx context.Context, name, email string) error {
	return u.leadRepo.Create(ctx, &entities.Lead{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	})
}

// buildPrompt selects one of two deterministic templates: CV-based when
// extracted file text is present, field-based otherwise
func buildPrompt(input *entities.GenerateSOPInput) string {
	instruction := toneInstruction(input.Tone)

	if input.CVText != "" {
		return "Based on the following CV, write a personalized, one-page Statement of Purpose for a graduate school or scholarship application.\n" +
			instruction + "\n\n" +
			"CV Content:\n" + input.CVText + "\n" +
			"The SOP should be relevant for academic admissions and showcase the applicant's strengths."
	}

	var sb strings.Builder
	sb.WriteString("Write a Statement of Purpose for the following applicant.\n")
	sb.WriteString(instruction + "\n")
	sb.WriteString("Name: " + input.Name + "\n")
	sb.WriteString("Field of Study: " + input.Field + "\n")
	fmt.Fprintf(&sb, "Target Degree Level: %s\n", orNotSpecified(input.DegreeLevel))
	fmt.Fprintf(&sb, "Target University: %s\n", orNotSpecified(input.TargetUniversity))
	fmt.Fprintf(&sb, "Target Country: %s\n", orNotSpecified(input.TargetCountry))
	fmt.Fprintf(&sb, "Academic Background: %s\n", orNotSpecified(input.Background))
	fmt.Fprintf(&sb, "Achievements: %s\n", orNotSpecified(input.Achievements))
	fmt.Fprintf(&sb, "Career Goals: %s\n", orNotSpecified(input.Goals))
	sb.WriteString("Make it one page, natural, and unique for the applicant.")
	return sb.String()
}

func orNotSpecified(v string) string {
	if v == "" {
		return "Not specified"
	}
	return v
}
