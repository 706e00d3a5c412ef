package worker

// notify_worker.go
// Processes jobs from QueueNotify: plain-text back-office notifications
// (new inquiry alerts and similar).

import (
	"context"
	"encoding/json"
	"fmt"

	"quotecraft/internal/infra"

	"github.com/rs/zerolog/log"
)

// NotifyJobPayload is the job envelope sent to QueueNotify.
type NotifyJobPayload struct {
	ToEmail string `json:"to_email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type NotifyWorker struct {
	mailer *infra.Mailer
}

func NewNotifyWorker(mailer *infra.Mailer) *NotifyWorker {
	return &NotifyWorker{mailer: mailer}
}

func (w *NotifyWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload NotifyJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("notify_worker: invalid payload")
		return nil
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("notify_worker: empty to_email — skipping")
		return nil
	}

	if err := w.mailer.Send(payload.ToEmail, payload.Subject, payload.Body, ""); err != nil {
		return fmt.Errorf("notify_worker: send: %w", err)
	}
	log.Info().Str("to", payload.ToEmail).Msg("notify_worker: notification sent")
	return nil
}
