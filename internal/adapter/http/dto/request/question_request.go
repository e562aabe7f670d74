package request

import "strings"

type AnswerRequest struct {
	SessionID string `json:"session_id"`
	Answer    string `json:"answer"`
}

func (r AnswerRequest) ResolveSessionID() string {
	return strings.TrimSpace(r.SessionID)
}

func (r AnswerRequest) ResolveAnswer() string {
	return strings.TrimSpace(r.Answer)
}
