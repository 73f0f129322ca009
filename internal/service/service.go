package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/immutablepost/internal/entity"
	"github.com/samandr77/immutablepost/internal/invoice"
	"github.com/samandr77/immutablepost/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.4.0 -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	Settings(ctx context.Context) (entity.Settings, error)
	SaveSettings(ctx context.Context, s entity.Settings) error
	CreateDeliveries(ctx context.Context, ds []entity.Delivery) error
	FailedDeliveries(ctx context.Context, maxAttempts int) ([]entity.Delivery, error)
	UpdateDelivery(ctx context.Context, d entity.Delivery) error
	DeliveriesByInvoice(ctx context.Context, number string) ([]entity.Delivery, error)
}

type Mailer interface {
	Send(ctx context.Context, n entity.Notice) error
}

type Producer interface {
	SendInvoiceNotified(ctx context.Context, n entity.InvoiceNotified)
}

type Service struct {
	repo        Repository
	mailer      Mailer
	producer    Producer
	builder     *invoice.Builder
	maxAttempts int
	now         func() time.Time
}

func New(repo Repository, mailer Mailer, producer Producer, builder *invoice.Builder, maxAttempts int) *Service {
	return &Service{
		repo:        repo,
		mailer:      mailer,
		producer:    producer,
		builder:     builder,
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
}

// WithClock replaces the clock used for invoice dates and delivery timestamps.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Notify renders the invoice notices and sends each of them once: to the
// vendor, the buyer and the seller, in that order. A failed send is recorded in
// its Delivery and does not stop the others.
func (s *Service) Notify(
	ctx context.Context,
	seller, buyer entity.Party,
	terms entity.InvoiceTerms,
) ([]entity.Delivery, error) {
	err := validateRecipients(seller, buyer)
	if err != nil {
		return nil, err
	}

	notices, err := s.builder.Build(seller, buyer, terms)
	if err != nil {
		return nil, fmt.Errorf("build notices: %w", err)
	}

	now := s.now()
	deliveries := make([]entity.Delivery, 0, len(notices))

	for _, n := range notices {
		d := entity.Delivery{
			ID:            uuid.Must(uuid.NewV4()),
			InvoiceNumber: terms.Number,
			Notice:        n,
			CreatedAt:     now,
		}

		s.deliver(ctx, &d)

		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}

func (s *Service) deliver(ctx context.Context, d *entity.Delivery) {
	d.Attempts++
	d.UpdatedAt = s.now()

	err := s.mailer.Send(ctx, d.Notice)
	if err != nil {
		d.Status = entity.DeliveryStatusFailed
		d.LastError = err.Error()
		d.Err = fmt.Errorf("%w: %s notice to %q: %w", entity.ErrTransportFailure, d.Notice.Recipient, d.Notice.To, err)

		slog.ErrorContext(ctx, "deliver notice",
			"recipient", d.Notice.Recipient,
			"to", d.Notice.To,
			"attempt", d.Attempts,
			"error", err,
		)

		return
	}

	d.Status = entity.DeliveryStatusSent
	d.LastError = ""
	d.Err = nil

	slog.InfoContext(ctx, "notice delivered", "recipient", d.Notice.Recipient, "to", d.Notice.To)
}

// Submit handles one form submission: the seller comes from the settings store
// and the buyer and fee figures from the submission. Transport failures are
// reported in the returned deliveries, never as an error.
func (s *Service) Submit(ctx context.Context, sub entity.Submission) ([]entity.Delivery, error) {
	ctx = logger.WithInvoice(ctx, sub.Invoice)

	settings, err := s.repo.Settings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	terms := entity.InvoiceTerms{
		Number:     sub.Invoice,
		IssuedAt:   s.now(),
		Fee:        sub.Fee,
		FeeExclGST: sub.FeeExclGST,
		GST:        sub.GST,
		PostURL:    sub.PostURL,
	}

	if sub.Buyer.Country != entity.CountryAustralia {
		err = terms.CheckGST()
		if err != nil {
			slog.WarnContext(ctx, "fee figures do not add up", "error", err)
		}
	}

	deliveries, err := s.Notify(ctx, settings.Seller, sub.Buyer, terms)
	if err != nil {
		return nil, err
	}

	err = s.repo.CreateDeliveries(ctx, deliveries)
	if err != nil {
		slog.ErrorContext(ctx, "save deliveries", "error", err)
	}

	s.producer.SendInvoiceNotified(ctx, summarize(terms.Number, sub.Buyer.Email, deliveries, s.now()))

	return deliveries, nil
}

// SubmitOnce is Submit for redelivered submissions: an invoice that already has
// deliveries is not sent again and its recorded deliveries are returned.
func (s *Service) SubmitOnce(ctx context.Context, sub entity.Submission) ([]entity.Delivery, error) {
	if sub.Invoice != "" {
		ds, err := s.repo.DeliveriesByInvoice(ctx, sub.Invoice)
		if err != nil {
			return nil, fmt.Errorf("get deliveries: %w", err)
		}

		if len(ds) > 0 {
			slog.InfoContext(logger.WithInvoice(ctx, sub.Invoice), "invoice already notified, skip submission")
			return ds, nil
		}
	}

	return s.Submit(ctx, sub)
}

func summarize(number, buyerEmail string, ds []entity.Delivery, at time.Time) entity.InvoiceNotified {
	n := entity.InvoiceNotified{
		InvoiceNumber: number,
		BuyerEmail:    buyerEmail,
		NotifiedAt:    at,
	}

	for _, d := range ds {
		if d.Status == entity.DeliveryStatusSent {
			n.Sent++
		} else {
			n.Failed++
		}
	}

	return n
}

// ResendFailed retries failed deliveries that have not used up their attempts.
// A delivery that cannot be updated is reported and the rest are still retried.
func (s *Service) ResendFailed(ctx context.Context) error {
	ds, err := s.repo.FailedDeliveries(ctx, s.maxAttempts)
	if err != nil {
		return fmt.Errorf("get failed deliveries: %w", err)
	}

	var errs []error

	for _, d := range ds {
		dctx := logger.WithInvoice(ctx, d.InvoiceNumber)

		s.deliver(dctx, &d)

		err = s.repo.UpdateDelivery(dctx, d)
		if err != nil {
			slog.ErrorContext(dctx, "update delivery", "id", d.ID, "error", err)
			errs = append(errs, fmt.Errorf("update delivery %s: %w", d.ID, err))
		}
	}

	return errors.Join(errs...)
}

func (s *Service) Settings(ctx context.Context) (entity.Settings, error) {
	return s.repo.Settings(ctx)
}

func (s *Service) UpdateSettings(ctx context.Context, settings entity.Settings) (entity.Settings, error) {
	settings, err := NormalizeSettings(settings)
	if err != nil {
		return entity.Settings{}, err
	}

	err = s.repo.SaveSettings(ctx, settings)
	if err != nil {
		return entity.Settings{}, fmt.Errorf("save settings: %w", err)
	}

	return settings, nil
}

func (s *Service) Form(ctx context.Context) (entity.Form, error) {
	settings, err := s.repo.Settings(ctx)
	if err != nil {
		return entity.Form{}, fmt.Errorf("load settings: %w", err)
	}

	return entity.Form{
		Title:         settings.FormTitle,
		WalletAddress: settings.WalletAddress,
		Categories:    entity.Categories,
	}, nil
}

func (s *Service) Countries() []string {
	return entity.Countries
}

func (s *Service) Deliveries(ctx context.Context, invoiceNumber string) ([]entity.Delivery, error) {
	ds, err := s.repo.DeliveriesByInvoice(ctx, invoiceNumber)
	if err != nil {
		return nil, err
	}

	if len(ds) == 0 {
		return nil, fmt.Errorf("%w: invoice %q", entity.ErrNotFound, invoiceNumber)
	}

	return ds, nil
}
