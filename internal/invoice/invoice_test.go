package invoice_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/immutablepost/internal/entity"
	"github.com/samandr77/immutablepost/internal/invoice"
)

var (
	vendor = entity.Party{
		Name:    "Increaseo",
		Country: "Australia",
		Email:   "invoices@vendor.test",
	}
	seller = entity.Party{
		Name:        "Acme Pty Ltd",
		ContactName: "Jane Citizen",
		Address:     "1 George St, Sydney",
		Country:     "Australia",
		Phone:       "+61 2 0000 0000",
		Email:       "jane@acme.test",
	}
	issuedAt = time.Date(2024, time.March, 7, 10, 30, 0, 0, time.UTC)
)

func buyer(country string) entity.Party {
	return entity.Party{
		Name:        "Maple Media",
		ContactName: "Sam Poster",
		Address:     "12 King St, Toronto",
		Country:     country,
		Phone:       "+1 416 000 0000",
		Email:       "sam@maple.test",
	}
}

func rows(body string, kind entity.LineItemKind) int {
	return strings.Count(body, `<tr class="`+string(kind)+`">`)
}

func TestLineItems_Australia(t *testing.T) {
	t.Parallel()

	terms := entity.InvoiceTerms{Fee: "0.05 ETH", FeeExclGST: "0.045", GST: "0.005"}

	got := invoice.LineItems(entity.CountryAustralia, terms)
	require.Equal(t, []entity.LineItem{
		{Kind: entity.LineItemProduct, Description: "Immutable Post", Quantity: 1, Amount: "0.05 ETH"},
	}, got)
}

func TestLineItems_GST(t *testing.T) {
	t.Parallel()

	terms := entity.InvoiceTerms{Fee: "0.05", FeeExclGST: "0.045", GST: "0.005"}

	got := invoice.LineItems("Canada", terms)
	require.Equal(t, []entity.LineItem{
		{Kind: entity.LineItemProduct, Description: "Immutable Post", Quantity: 1, Amount: "0.045"},
		{Kind: entity.LineItemGST, Description: "GST (10%)", Amount: "0.005"},
		{Kind: entity.LineItemTotal, Description: "Total", Amount: "0.05"},
	}, got)
}

func TestBuilder_Build_Australia(t *testing.T) {
	t.Parallel()

	terms := entity.InvoiceTerms{
		Number:   "IP-1001",
		IssuedAt: issuedAt,
		Fee:      "0.05 ETH",
		PostURL:  "https://example.test/posts/1",
	}

	notices, err := invoice.New(vendor).Build(seller, buyer(entity.CountryAustralia), terms)
	require.NoError(t, err)
	require.Len(t, notices, 3)

	for _, n := range notices {
		require.Equal(t, 1, rows(n.Body, entity.LineItemProduct))
		require.Zero(t, rows(n.Body, entity.LineItemGST))
		require.Zero(t, rows(n.Body, entity.LineItemTotal))
		require.Contains(t, n.Body, "0.05 ETH")
		require.NotContains(t, n.Body, "GST (10%)")
	}
}

func TestBuilder_Build_GST(t *testing.T) {
	t.Parallel()

	terms := entity.InvoiceTerms{
		Number:     "IP-1002",
		IssuedAt:   issuedAt,
		Fee:        "0.05",
		FeeExclGST: "0.045",
		GST:        "0.005",
		PostURL:    "https://example.test/posts/2",
	}

	notices, err := invoice.New(vendor).Build(seller, buyer("Canada"), terms)
	require.NoError(t, err)
	require.Len(t, notices, 3)

	for _, n := range notices {
		require.Equal(t, 1, rows(n.Body, entity.LineItemProduct))
		require.Equal(t, 1, rows(n.Body, entity.LineItemGST))
		require.Equal(t, 1, rows(n.Body, entity.LineItemTotal))
		require.Contains(t, n.Body, `<td align="right">0.045</td>`)
		require.Contains(t, n.Body, `<td align="right">0.005</td>`)
		require.Contains(t, n.Body, `<td align="right">0.05</td>`)
	}
}

func TestBuilder_Build_Addressing(t *testing.T) {
	t.Parallel()

	b := buyer("Canada")
	terms := entity.InvoiceTerms{Number: "IP-1003", IssuedAt: issuedAt, Fee: "0.05", PostURL: "https://example.test/p"}

	notices, err := invoice.New(vendor).Build(seller, b, terms)
	require.NoError(t, err)

	require.Equal(t, entity.RecipientVendor, notices[0].Recipient)
	require.Equal(t, vendor.Email, notices[0].To)
	require.Equal(t, "New Immutable Post from Wordpress Plugin Tax Invoice from Sam Poster", notices[0].Subject)

	require.Equal(t, entity.RecipientBuyer, notices[1].Recipient)
	require.Equal(t, b.Email, notices[1].To)
	require.Equal(t, "Thanks for posting on Immutable Post", notices[1].Subject)

	require.Equal(t, entity.RecipientSeller, notices[2].Recipient)
	require.Equal(t, seller.Email, notices[2].To)
	require.Equal(t, "New Immutable Post Tax Invoice from Sam Poster", notices[2].Subject)

	require.Equal(t, notices[1].Body, notices[2].Body)
	require.NotEqual(t, notices[0].Body, notices[1].Body)
	require.Contains(t, notices[0].Body, "Increaseo")
	require.Contains(t, notices[1].Body, "Acme Pty Ltd")

	for _, n := range notices {
		require.Equal(t, entity.Address{Name: seller.Name, Email: seller.Email}, n.From)
		require.Contains(t, n.Body, "Invoice #IP-1003")
		require.Contains(t, n.Body, "Date: 07/03/2024")
		require.Contains(t, n.Body, `<a href="https://example.test/p">`)
		require.Contains(t, n.Body, "Maple Media")
	}
}

func TestBuilder_Build_Deterministic(t *testing.T) {
	t.Parallel()

	terms := entity.InvoiceTerms{Number: "IP-1004", IssuedAt: issuedAt, Fee: "0.05", FeeExclGST: "0.045", GST: "0.005"}
	b := invoice.New(vendor)

	first, err := b.Build(seller, buyer("Canada"), terms)
	require.NoError(t, err)

	second, err := b.Build(seller, buyer("Canada"), terms)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestBuilder_Build_EscapesBuyerInput(t *testing.T) {
	t.Parallel()

	b := buyer("Canada")
	b.Name = `<script>alert("x")</script>`

	notices, err := invoice.New(vendor).Build(seller, b, entity.InvoiceTerms{IssuedAt: issuedAt})
	require.NoError(t, err)

	for _, n := range notices {
		require.NotContains(t, n.Body, "<script>")
		require.Contains(t, n.Body, "&lt;script&gt;")
	}
}
