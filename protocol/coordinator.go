// Package protocol runs messages through validation, delivery
// bookkeeping, and logging, and presents the whole system behind one
// service facade.
//
// Information Hiding:
// - Outcome classification rules live here, not in callers
// - Validation stays a pure read; statistics and logs change together
package protocol

import (
	"context"
	"fmt"

	"github.com/samskrita/samvada/agent"
	"github.com/samskrita/samvada/logbook"
	"github.com/samskrita/samvada/model"
	"github.com/samskrita/samvada/validate"
)

// Coordinator processes one message end to end: validate, update agent
// statistics, and record the exchange.
type Coordinator struct {
	validator *validate.Validator
	directory *agent.Directory
	log       *logbook.Logger
}

// NewCoordinator wires a coordinator from its collaborators.
func NewCoordinator(v *validate.Validator, d *agent.Directory, l *logbook.Logger) *Coordinator {
	return &Coordinator{validator: v, directory: d, log: l}
}

// Process validates the message, then records delivery. Validation
// happens first and changes nothing; once delivery bookkeeping starts,
// statistics and the log entry land together. A message that fails
// validation is still delivered and logged, with a warning outcome.
// Internal faults yield an error outcome and leave no partial state.
func (c *Coordinator) Process(ctx context.Context, msg model.Message, from, to *agent.Agent, sessionID string) (outcome model.ProtocolOutcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			outcome = model.ProtocolOutcome{
				Status:  model.StatusError,
				Message: fmt.Sprintf("internal fault while processing message: %v", r),
			}
			err = fmt.Errorf("message processing panicked: %v", r)
		}
	}()

	result := c.validator.Validate(msg.Content)

	if err := c.directory.RecordExchange(from.ID, to.ID, 0); err != nil {
		return model.ProtocolOutcome{
			Status:  model.StatusError,
			Message: fmt.Sprintf("failed to record exchange: %v", err),
		}, err
	}
	if sessionID != "" {
		c.directory.RecordSessionMessage(sessionID)
	}

	if _, err := c.log.Record(ctx, model.Interaction{
		FromAgent:  from.ID,
		ToAgent:    to.ID,
		Message:    msg,
		Kind:       model.KindDirect,
		SessionID:  sessionID,
		Success:    result.IsValid,
		Validation: &result,
	}); err != nil {
		return model.ProtocolOutcome{
			Status:  model.StatusError,
			Message: fmt.Sprintf("failed to record log entry: %v", err),
		}, err
	}

	return classify(result), nil
}

func classify(result model.ValidationResult) model.ProtocolOutcome {
	outcome := model.ProtocolOutcome{
		Validation:  &result,
		Suggestions: model.IssueMessages(result.Suggestions),
	}
	if result.IsValid {
		outcome.Status = model.StatusSuccess
		outcome.Message = "message processed"
	} else {
		outcome.Status = model.StatusWarning
		outcome.Message = "message processed with validation issues"
		outcome.Suggestions = append(outcome.Suggestions, model.IssueMessages(result.Errors)...)
	}
	return outcome
}
