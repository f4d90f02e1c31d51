package entities

import (
	"time"

	"github.com/google/uuid"
)

// Lead represents a captured name/email pair of marketing interest,
// independent of the user account table. One row per unique email.
type Lead struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
