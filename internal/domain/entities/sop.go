package entities

import (
	"time"

	"github.com/google/uuid"
)

// SOP represents a generated Statement of Purpose. Rows are append-only:
// never mutated, never deleted, and the per-user count drives the free quota.
type SOP struct {
	ID        uuid.UUID `json:"id"`
	UserEmail string    `json:"userEmail"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// GenerateSOPInput represents the generation form. CVText and SessionEmail are
// filled by the handler (from the uploaded file and the verified session), not
// bound from the form.
type GenerateSOPInput struct {
	Name             string `form:"name"`
	Email            string `form:"email"`
	DegreeLevel      string `form:"degree_level"`
	Field            string `form:"field"`
	TargetUniversity string `form:"target_university"`
	TargetCountry    string `form:"target_country"`
	Background       string `form:"background"`
	Achievements     string `form:"achievements"`
	Goals            string `form:"goals"`
	Tone             string `form:"tone"`

	CVText       string `form:"-"`
	SessionEmail string `form:"-"`
}

// Empty reports whether the submission carries neither extracted CV text nor
// any structured field
func (in *GenerateSOPInput) Empty() bool {
	return in.CVText == "" &&
		in.Name == "" && in.Email == "" && in.DegreeLevel == "" && in.Field == "" &&
		in.TargetUniversity == "" && in.TargetCountry == "" && in.Background == "" &&
		in.Achievements == "" && in.Goals == ""
}
