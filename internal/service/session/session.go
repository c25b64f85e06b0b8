package session

import (
	"time"

	"github.com/agron-app/agron/internal/domain/models"
)

// Step identifies the current stage of the selection flow.
type Step string

const (
	StepLanguage Step = "language"
	StepCrop     Step = "crop"
	StepLand     Step = "land"
	StepSchemes  Step = "schemes"
)

// Session is one farmer's selection state. The flow is cyclic: there is no
// terminal step, only back and home actions moving the session around.
type Session struct {
	ID        string               `json:"id"`
	Profile   models.FarmerProfile `json:"profile"`
	Step      Step                 `json:"step"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// previous returns the step immediately before s. Language has no
// predecessor.
func (s Step) previous() Step {
	switch s {
	case StepCrop:
		return StepLanguage
	case StepLand:
		return StepCrop
	case StepSchemes:
		return StepLand
	}
	return StepLanguage
}
