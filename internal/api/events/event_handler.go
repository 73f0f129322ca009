package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/samandr77/immutablepost/internal/entity"
	"github.com/samandr77/immutablepost/pkg/broker"
)

type Service interface {
	SubmitOnce(ctx context.Context, sub entity.Submission) ([]entity.Delivery, error)
}

type EventHandler struct {
	s Service
}

func NewEventHandler(s Service) *EventHandler {
	return &EventHandler{s: s}
}

type SubmissionEvent struct {
	Company  string `json:"company"`
	FullName string `json:"fullname"`
	Country  string `json:"country"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Fee      string `json:"fee"`
	FeeNoGST string `json:"feenogst"`
	GSTCal   string `json:"gstcal"`
	Invoice  string `json:"invoicenb"`
	PostURL  string `json:"posturl"`
}

// OnSubmission handles a submission published by another producer the same way
// the HTTP endpoint does, except that a redelivered invoice is not sent twice.
// Invalid recipients are dropped and malformed payloads are marked permanent so
// the consumer does not retry them.
func (h *EventHandler) OnSubmission(ctx context.Context, msg kafka.Message) error {
	var event SubmissionEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return broker.Permanent(fmt.Errorf("unmarshal event: %w", err))
	}

	_, err = h.s.SubmitOnce(ctx, entity.Submission{
		Buyer: entity.Party{
			Name:        event.Company,
			ContactName: event.FullName,
			Address:     event.Address,
			Country:     event.Country,
			Phone:       event.Phone,
			Email:       event.Email,
		},
		Fee:        event.Fee,
		FeeExclGST: event.FeeNoGST,
		GST:        event.GSTCal,
		Invoice:    event.Invoice,
		PostURL:    event.PostURL,
	})
	if err != nil {
		if errors.Is(err, entity.ErrInvalidRecipient) {
			slog.WarnContext(ctx, "drop submission event", "invoice", event.Invoice, "error", err)
			return nil
		}

		return fmt.Errorf("submit: %w", err)
	}

	return nil
}
