package response

import "estimate_agent/internal/usecase"

type RequirementResponse struct {
	ID            string `json:"id"`
	SessionID     string `json:"session_id"`
	Status        string `json:"status"`
	Message       string `json:"message"`
	Category      string `json:"category,omitempty"`
	QuestionCount int    `json:"question_count"`
}

func FromSubmitResult(r usecase.SubmitResult) RequirementResponse {
	return RequirementResponse{
		ID:            r.EstimateID,
		SessionID:     r.SessionID,
		Status:        r.Status,
		Message:       r.Message,
		Category:      r.Category,
		QuestionCount: r.QuestionCount,
	}
}
