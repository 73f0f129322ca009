package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/immutablepost/internal/entity"
	"github.com/samandr77/immutablepost/internal/invoice"
	"github.com/samandr77/immutablepost/internal/mocks"
	"github.com/samandr77/immutablepost/internal/service"
)

var (
	vendor = entity.Party{Name: "Increaseo", Country: "Australia", Email: "invoices@vendor.test"}
	seller = entity.Party{
		Name:        "Acme Pty Ltd",
		ContactName: "Jane Citizen",
		Country:     "Australia",
		Email:       "jane@acme.test",
	}
	buyer = entity.Party{
		Name:        "Maple Media",
		ContactName: "Sam Poster",
		Country:     "Canada",
		Email:       "sam@maple.test",
	}
	now = time.Date(2024, time.March, 7, 10, 30, 0, 0, time.UTC)
)

type deps struct {
	repo     *mocks.MockRepository
	mailer   *mocks.MockMailer
	producer *mocks.MockProducer
	s        *service.Service
}

func newDeps(t *testing.T) deps {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := deps{
		repo:     mocks.NewMockRepository(ctrl),
		mailer:   mocks.NewMockMailer(ctrl),
		producer: mocks.NewMockProducer(ctrl),
	}

	d.s = service.New(d.repo, d.mailer, d.producer, invoice.New(vendor), 5).
		WithClock(func() time.Time { return now })

	return d
}

func gstTerms() entity.InvoiceTerms {
	return entity.InvoiceTerms{
		Number:     "IP-1002",
		IssuedAt:   now,
		Fee:        "0.05",
		FeeExclGST: "0.045",
		GST:        "0.005",
		PostURL:    "https://example.test/posts/2",
	}
}

func TestService_Notify(t *testing.T) {
	t.Parallel()

	d := newDeps(t)

	var sent []entity.Notice

	d.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n entity.Notice) error {
			sent = append(sent, n)
			return nil
		}).Times(3)

	got, err := d.s.Notify(context.Background(), seller, buyer, gstTerms())
	require.NoError(t, err)
	require.Len(t, got, 3)

	require.Len(t, sent, 3)
	require.Equal(t, []string{vendor.Email, buyer.Email, seller.Email}, []string{sent[0].To, sent[1].To, sent[2].To})
	require.Equal(t, sent[1].Body, sent[2].Body)

	for i, dl := range got {
		require.Equal(t, sent[i], dl.Notice)
		require.Equal(t, entity.DeliveryStatusSent, dl.Status)
		require.Equal(t, 1, dl.Attempts)
		require.Equal(t, "IP-1002", dl.InvoiceNumber)
		require.NotEqual(t, uuid.Nil, dl.ID)
		require.Equal(t, now, dl.CreatedAt)
		require.NoError(t, dl.Err)
	}
}

func TestService_Notify_TransportFailureContinues(t *testing.T) {
	t.Parallel()

	d := newDeps(t)

	smtpErr := errors.New("550 mailbox unavailable")

	gomock.InOrder(
		d.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(smtpErr),
		d.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil),
		d.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil),
	)

	got, err := d.s.Notify(context.Background(), seller, buyer, gstTerms())
	require.NoError(t, err)
	require.Len(t, got, 3)

	require.Equal(t, entity.DeliveryStatusFailed, got[0].Status)
	require.ErrorIs(t, got[0].Err, entity.ErrTransportFailure)
	require.ErrorIs(t, got[0].Err, smtpErr)
	require.Equal(t, smtpErr.Error(), got[0].LastError)

	require.Equal(t, entity.DeliveryStatusSent, got[1].Status)
	require.Equal(t, entity.DeliveryStatusSent, got[2].Status)
}

func TestService_Notify_InvalidRecipient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		seller entity.Party
		buyer  entity.Party
	}{
		{name: "empty buyer email", seller: seller, buyer: entity.Party{Name: "Maple Media"}},
		{name: "malformed buyer email", seller: seller, buyer: entity.Party{Email: "sam-at-maple"}},
		{name: "empty seller email", seller: entity.Party{Name: "Acme"}, buyer: buyer},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)

			got, err := d.s.Notify(context.Background(), tt.seller, tt.buyer, gstTerms())
			require.ErrorIs(t, err, entity.ErrInvalidRecipient)
			require.Nil(t, got)
		})
	}
}

func TestService_Submit(t *testing.T) {
	t.Parallel()

	d := newDeps(t)

	d.repo.EXPECT().Settings(gomock.Any()).Return(entity.Settings{Seller: seller}, nil)
	d.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	d.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("timeout"))
	d.repo.EXPECT().CreateDeliveries(gomock.Any(), gomock.Len(3)).Return(nil)
	d.producer.EXPECT().SendInvoiceNotified(gomock.Any(), entity.InvoiceNotified{
		InvoiceNumber: "IP-1005",
		BuyerEmail:    buyer.Email,
		Sent:          2,
		Failed:        1,
		NotifiedAt:    now,
	})

	got, err := d.s.Submit(context.Background(), entity.Submission{
		Buyer:      buyer,
		Fee:        "0.05",
		FeeExclGST: "0.045",
		GST:        "0.005",
		Invoice:    "IP-1005",
		PostURL:    "https://example.test/posts/5",
	})
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Contains(t, got[1].Notice.Body, "Date: 07/03/2024")
	require.Contains(t, got[1].Notice.Body, "GST (10%)")
}

func TestService_Submit_Australia(t *testing.T) {
	t.Parallel()

	d := newDeps(t)

	au := buyer
	au.Country = entity.CountryAustralia

	d.repo.EXPECT().Settings(gomock.Any()).Return(entity.Settings{Seller: seller}, nil)
	d.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	d.repo.EXPECT().CreateDeliveries(gomock.Any(), gomock.Any()).Return(nil)
	d.producer.EXPECT().SendInvoiceNotified(gomock.Any(), gomock.Any())

	got, err := d.s.Submit(context.Background(), entity.Submission{Buyer: au, Fee: "0.05 ETH", Invoice: "IP-1006"})
	require.NoError(t, err)

	for _, dl := range got {
		require.Contains(t, dl.Notice.Body, "0.05 ETH")
		require.NotContains(t, dl.Notice.Body, "GST (10%)")
	}
}

func TestService_Submit_SellerNotConfigured(t *testing.T) {
	t.Parallel()

	d := newDeps(t)

	d.repo.EXPECT().Settings(gomock.Any()).Return(entity.Settings{}, nil)

	_, err := d.s.Submit(context.Background(), entity.Submission{Buyer: buyer, Invoice: "IP-1007"})
	require.ErrorIs(t, err, entity.ErrInvalidRecipient)
}

func TestService_Submit_SaveFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	d := newDeps(t)

	d.repo.EXPECT().Settings(gomock.Any()).Return(entity.Settings{Seller: seller}, nil)
	d.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	d.repo.EXPECT().CreateDeliveries(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
	d.producer.EXPECT().SendInvoiceNotified(gomock.Any(), gomock.Any())

	got, err := d.s.Submit(context.Background(), entity.Submission{Buyer: buyer, Invoice: "IP-1008"})
	require.NoError(t, err)
	require.Len(t, got, 3)
}

func TestService_ResendFailed(t *testing.T) {
	t.Parallel()

	d := newDeps(t)

	failed := []entity.Delivery{
		{
			ID:            uuid.Must(uuid.NewV4()),
			InvoiceNumber: "IP-1009",
			Notice:        entity.Notice{Recipient: entity.RecipientBuyer, To: buyer.Email},
			Status:        entity.DeliveryStatusFailed,
			Attempts:      1,
			LastError:     "timeout",
		},
		{
			ID:            uuid.Must(uuid.NewV4()),
			InvoiceNumber: "IP-1009",
			Notice:        entity.Notice{Recipient: entity.RecipientSeller, To: seller.Email},
			Status:        entity.DeliveryStatusFailed,
			Attempts:      2,
			LastError:     "timeout",
		},
	}

	d.repo.EXPECT().FailedDeliveries(gomock.Any(), 5).Return(failed, nil)
	d.mailer.EXPECT().Send(gomock.Any(), failed[0].Notice).Return(nil)
	d.mailer.EXPECT().Send(gomock.Any(), failed[1].Notice).Return(errors.New("still down"))

	var updated []entity.Delivery

	d.repo.EXPECT().UpdateDelivery(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, dl entity.Delivery) error {
			updated = append(updated, dl)
			return nil
		}).Times(2)

	require.NoError(t, d.s.ResendFailed(context.Background()))
	require.Len(t, updated, 2)

	require.Equal(t, entity.DeliveryStatusSent, updated[0].Status)
	require.Equal(t, 2, updated[0].Attempts)
	require.Empty(t, updated[0].LastError)
	require.Equal(t, now, updated[0].UpdatedAt)

	require.Equal(t, entity.DeliveryStatusFailed, updated[1].Status)
	require.Equal(t, 3, updated[1].Attempts)
	require.Equal(t, "still down", updated[1].LastError)
}

func TestService_ResendFailed_ContinuesAfterUpdateError(t *testing.T) {
	t.Parallel()

	d := newDeps(t)

	failed := []entity.Delivery{
		{
			ID:            uuid.Must(uuid.NewV4()),
			InvoiceNumber: "IP-1010",
			Notice:        entity.Notice{Recipient: entity.RecipientVendor, To: vendor.Email},
			Status:        entity.DeliveryStatusFailed,
			Attempts:      1,
		},
		{
			ID:            uuid.Must(uuid.NewV4()),
			InvoiceNumber: "IP-1011",
			Notice:        entity.Notice{Recipient: entity.RecipientBuyer, To: buyer.Email},
			Status:        entity.DeliveryStatusFailed,
			Attempts:      1,
		},
	}

	d.repo.EXPECT().FailedDeliveries(gomock.Any(), 5).Return(failed, nil)
	d.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	gomock.InOrder(
		d.repo.EXPECT().UpdateDelivery(gomock.Any(), gomock.Any()).Return(errors.New("connection reset")),
		d.repo.EXPECT().UpdateDelivery(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, dl entity.Delivery) error {
				require.Equal(t, failed[1].ID, dl.ID)
				require.Equal(t, entity.DeliveryStatusSent, dl.Status)
				return nil
			}),
	)

	err := d.s.ResendFailed(context.Background())
	require.ErrorContains(t, err, "connection reset")
	require.ErrorContains(t, err, failed[0].ID.String())
}

func TestService_SubmitOnce(t *testing.T) {
	t.Parallel()

	t.Run("already notified", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)

		recorded := []entity.Delivery{{
			ID:            uuid.Must(uuid.NewV4()),
			InvoiceNumber: "IP-1012",
			Status:        entity.DeliveryStatusSent,
		}}

		d.repo.EXPECT().DeliveriesByInvoice(gomock.Any(), "IP-1012").Return(recorded, nil)

		got, err := d.s.SubmitOnce(context.Background(), entity.Submission{Buyer: buyer, Invoice: "IP-1012"})
		require.NoError(t, err)
		require.Equal(t, recorded, got)
	})

	t.Run("new invoice", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)

		d.repo.EXPECT().DeliveriesByInvoice(gomock.Any(), "IP-1013").Return(nil, nil)
		d.repo.EXPECT().Settings(gomock.Any()).Return(entity.Settings{Seller: seller}, nil)
		d.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(3)
		d.repo.EXPECT().CreateDeliveries(gomock.Any(), gomock.Any()).Return(nil)
		d.producer.EXPECT().SendInvoiceNotified(gomock.Any(), gomock.Any())

		got, err := d.s.SubmitOnce(context.Background(), entity.Submission{Buyer: buyer, Invoice: "IP-1013"})
		require.NoError(t, err)
		require.Len(t, got, 3)
	})

	t.Run("lookup fails", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)

		d.repo.EXPECT().DeliveriesByInvoice(gomock.Any(), "IP-1014").Return(nil, errors.New("db down"))

		_, err := d.s.SubmitOnce(context.Background(), entity.Submission{Buyer: buyer, Invoice: "IP-1014"})
		require.Error(t, err)
	})
}

func TestService_UpdateSettings(t *testing.T) {
	t.Parallel()

	d := newDeps(t)

	in := entity.Settings{
		FormTitle:     "  Publish your post ",
		WalletAddress: "0xe77eac47dcdfec75ee8932159d7914a1f055c853",
		Seller:        seller,
	}

	want := in
	want.FormTitle = "Publish your post"
	want.WalletAddress = "0xE77Eac47dcdFeC75Ee8932159d7914a1F055C853"

	d.repo.EXPECT().SaveSettings(gomock.Any(), want).Return(nil)

	got, err := d.s.UpdateSettings(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestService_UpdateSettings_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings entity.Settings
	}{
		{name: "wallet", settings: entity.Settings{WalletAddress: "0x1234"}},
		{name: "country", settings: entity.Settings{Seller: entity.Party{Country: "Atlantis"}}},
		{name: "email", settings: entity.Settings{Seller: entity.Party{Email: "jane-at-acme"}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)

			_, err := d.s.UpdateSettings(context.Background(), tt.settings)
			require.ErrorIs(t, err, entity.ErrInvalidArgument)
		})
	}
}

func TestService_Form(t *testing.T) {
	t.Parallel()

	d := newDeps(t)

	d.repo.EXPECT().Settings(gomock.Any()).Return(entity.Settings{
		FormTitle:     "Publish your post",
		WalletAddress: "0xE77Eac47dcdFeC75Ee8932159d7914a1F055C853",
		Seller:        seller,
	}, nil)

	got, err := d.s.Form(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Publish your post", got.Title)
	require.Equal(t, "0xE77Eac47dcdFeC75Ee8932159d7914a1F055C853", got.WalletAddress)
	require.Equal(t, entity.Categories, got.Categories)
}

func TestService_Deliveries_NotFound(t *testing.T) {
	t.Parallel()

	d := newDeps(t)

	d.repo.EXPECT().DeliveriesByInvoice(gomock.Any(), "IP-404").Return(nil, nil)

	_, err := d.s.Deliveries(context.Background(), "IP-404")
	require.ErrorIs(t, err, entity.ErrNotFound)
}
