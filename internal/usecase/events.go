package usecase

import (
	"context"

	"estimate_agent/internal/usecase/interfaces"
	"estimate_agent/pkg/logger"
)

const (
	SubjectEstimateCreated    = "estimates.created"
	SubjectQuestionsGenerated = "estimates.questions_generated"
	SubjectTotalUpdated       = "estimates.total_updated"
)

// publishEvent is best effort: a failed publish never fails the operation.
func publishEvent(ctx context.Context, events interfaces.IEventPublisher, subject string, payload any) {
	if events == nil {
		return
	}
	if err := events.Publish(ctx, subject, payload); err != nil {
		logger.Warn(ctx, "failed to publish event", "subject", subject, "error", err)
	}
}
