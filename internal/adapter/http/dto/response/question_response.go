package response

import "estimate_agent/internal/domain/entities"

const defaultQuestionCategory = "general"

type QuestionResponse struct {
	ID          string `json:"id"`
	Question    string `json:"question"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	IsRequired  bool   `json:"is_required"`
	IsAnswered  bool   `json:"is_answered"`
	Answer      string `json:"answer,omitempty"`
	Position    int    `json:"position"`
}

// FromQuestion maps a stored question. Generated questions are always
// required and fall back to the "general" category.
func FromQuestion(q entities.Question) QuestionResponse {
	category := q.Category
	if category == "" {
		category = defaultQuestionCategory
	}
	return QuestionResponse{
		ID:          q.ID,
		Question:    q.Question,
		Description: q.Description,
		Category:    category,
		IsRequired:  true,
		IsAnswered:  q.IsAnswered,
		Answer:      q.Answer,
		Position:    q.Position,
	}
}

type QuestionsResponse struct {
	SessionID  string             `json:"session_id"`
	EstimateID string             `json:"estimate_id"`
	Questions  []QuestionResponse `json:"questions"`
	Total      int                `json:"total"`
}

func FromQuestions(e entities.Estimate, questions []entities.Question) QuestionsResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, FromQuestion(q))
	}
	return QuestionsResponse{
		SessionID:  e.SessionID,
		EstimateID: e.ID,
		Questions:  out,
		Total:      len(out),
	}
}

type AnswerResponse struct {
	SessionID          string `json:"session_id"`
	QuestionID         string `json:"question_id"`
	RemainingQuestions int    `json:"remaining_questions"`
}
