package worker

// quote_email_worker.go
// Processes jobs from QueueQuoteEmail: renders the quote to PDF and mails
// it to the client with the contractor's message in the body.

import (
	"context"
	"encoding/json"
	"fmt"

	"quotecraft/internal/infra"
	"quotecraft/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// QuoteEmailJobPayload is the job envelope sent to QueueQuoteEmail.
type QuoteEmailJobPayload struct {
	QuoteID string `json:"quote_id"`
	ToEmail string `json:"to_email"`
	Message string `json:"message,omitempty"`
}

type QuoteEmailWorker struct {
	quoteRepo      repository.QuoteRepository
	mailer         *infra.Mailer
	pdfStoragePath string
	companyName    string
}

func NewQuoteEmailWorker(quoteRepo repository.QuoteRepository, mailer *infra.Mailer, pdfStoragePath, companyName string) *QuoteEmailWorker {
	return &QuoteEmailWorker{
		quoteRepo:      quoteRepo,
		mailer:         mailer,
		pdfStoragePath: pdfStoragePath,
		companyName:    companyName,
	}
}

// Process renders and sends one quote. Malformed payloads are dropped;
// transient failures (PDF write, SMTP) return an error so the pool retries.
func (w *QuoteEmailWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload QuoteEmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("quote_email_worker: invalid payload")
		return nil
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("quote_email_worker: empty to_email — skipping")
		return nil
	}

	quoteID, err := uuid.Parse(payload.QuoteID)
	if err != nil {
		log.Error().Str("quote_id", payload.QuoteID).Msg("quote_email_worker: invalid quote_id")
		return nil
	}

	quote, err := w.quoteRepo.FindByID(ctx, quoteID)
	if err != nil {
		return fmt.Errorf("quote_email_worker: quote %s: %w", payload.QuoteID, err)
	}

	pdfPath, err := infra.GenerateQuotePDF(quote, w.companyName, w.pdfStoragePath)
	if err != nil {
		return fmt.Errorf("quote_email_worker: render pdf: %w", err)
	}

	subject := fmt.Sprintf("Quote %s", quote.QuoteNumber)
	body := payload.Message
	if body == "" {
		body = fmt.Sprintf("Please find attached quote %s.\nTotal: %s", quote.QuoteNumber, quote.TotalPrice.StringFixed(2))
	}

	if err := w.mailer.Send(payload.ToEmail, subject, body, pdfPath); err != nil {
		return fmt.Errorf("quote_email_worker: send: %w", err)
	}

	log.Info().
		Str("to", payload.ToEmail).
		Str("quote", quote.QuoteNumber).
		Msg("quote_email_worker: quote sent")
	return nil
}
