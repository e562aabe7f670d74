package request

import (
	"strings"

	"estimate_agent/internal/usecase"
)

// RequirementRequest is the first wizard step: free-text requirements plus
// optional project metadata.
type RequirementRequest struct {
	Description  string `json:"description"`
	Organization string `json:"organization"`
	Industry     string `json:"industry"`
	Budget       string `json:"budget"`
	Timeline     string `json:"timeline"`
	SessionID    string `json:"session_id"`
	Email        string `json:"email"`
}

func (r RequirementRequest) ToInput() usecase.SubmitRequirementInput {
	return usecase.SubmitRequirementInput{
		Description:  strings.TrimSpace(r.Description),
		Organization: strings.TrimSpace(r.Organization),
		Industry:     strings.TrimSpace(r.Industry),
		Budget:       strings.TrimSpace(r.Budget),
		Timeline:     strings.TrimSpace(r.Timeline),
		SessionID:    strings.TrimSpace(r.SessionID),
		Email:        strings.TrimSpace(r.Email),
	}
}
