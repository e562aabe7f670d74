package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"estimate_agent/internal/domain/entities"
	"estimate_agent/internal/usecase/interfaces"
	"estimate_agent/pkg/logger"
)

var ErrDescriptionRequired = errors.New("requirement description is required")

const (
	untitledEstimate = "Untitled estimate"

	SubmitStatusSuccess = "success"

	msgQuestionsGenerated = "Questions generated successfully"
	msgQuestionsPending   = "Questions are being prepared, check back shortly"
)

// SubmitRequirementInput is the free-text requirement sent by the wizard.
type SubmitRequirementInput struct {
	Description  string
	Organization string
	Industry     string
	Budget       string
	Timeline     string
	SessionID    string
	Email        string
}

type SubmitResult struct {
	EstimateID    string
	SessionID     string
	Status        string
	Message       string
	Category      string
	QuestionCount int
}

//go:generate mockgen -source=requirement_usecase.go -destination=../adapter/http/handlers/mocks/requirement_usecase_mock.go -package=mocks

// IRequirementUseCase accepts initial requirements and kicks off question generation.
type IRequirementUseCase interface {
	Submit(ctx context.Context, in SubmitRequirementInput) (SubmitResult, error)
}

type RequirementUseCase struct {
	estimates IEstimateUseCase
	workflow  IWorkflowUseCase
	events    interfaces.IEventPublisher
}

var _ IRequirementUseCase = (*RequirementUseCase)(nil)

func NewRequirementUseCase(estimates IEstimateUseCase, workflow IWorkflowUseCase, events interfaces.IEventPublisher) *RequirementUseCase {
	return &RequirementUseCase{estimates: estimates, workflow: workflow, events: events}
}

// Submit stores the requirement as a draft estimate and runs the workflow.
// A workflow failure is logged and reported as pending, not as an error.
func (u *RequirementUseCase) Submit(ctx context.Context, in SubmitRequirementInput) (SubmitResult, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return SubmitResult{}, ErrDescriptionRequired
	}

	organization := strings.TrimSpace(in.Organization)
	title := untitledEstimate
	if organization != "" {
		title = fmt.Sprintf("Estimate for %s", organization)
	}

	estimate, err := u.estimates.CreateEstimate(ctx, CreateEstimateInput{
		SessionID:    in.SessionID,
		Title:        title,
		Requirements: description,
		Email:        in.Email,
		Metadata: entities.EstimateMetadata{
			Organization: organization,
			Industry:     strings.TrimSpace(in.Industry),
			Budget:       strings.TrimSpace(in.Budget),
			Timeline:     strings.TrimSpace(in.Timeline),
		},
	})
	if err != nil {
		return SubmitResult{}, err
	}

	publishEvent(ctx, u.events, SubjectEstimateCreated, map[string]any{
		"estimate_id": estimate.ID,
		"session_id":  estimate.SessionID,
		"title":       estimate.Title,
	})

	result := SubmitResult{
		EstimateID: estimate.ID,
		SessionID:  estimate.SessionID,
		Status:     SubmitStatusSuccess,
		Message:    msgQuestionsGenerated,
	}

	run, err := u.workflow.Run(ctx, estimate.ID, description)
	if err != nil {
		logger.Error(ctx, "initial estimate workflow failed", "estimate_id", estimate.ID, "error", err)
		result.Message = msgQuestionsPending
		return result, nil
	}

	result.Category = run.Category.Category.Name
	result.QuestionCount = len(run.Questions)
	return result, nil
}
