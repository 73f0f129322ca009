// Package invoice renders tax invoice notices for a submission.
package invoice

import (
	"bytes"
	"fmt"

	"github.com/samandr77/immutablepost/internal/entity"
)

const (
	productDescription = "Immutable Post"
	gstDescription     = "GST (10%)"
	totalDescription   = "Total"

	subjectVendor = "New Immutable Post from Wordpress Plugin Tax Invoice from %s"
	subjectBuyer  = "Thanks for posting on Immutable Post"
	subjectSeller = "New Immutable Post Tax Invoice from %s"
)

// LineItems selects the invoice layout for the buyer's country. Australian
// buyers get a single row at the total fee; everyone else gets the GST-exclusive
// price, a GST row and a total row. The figures come pre-computed in terms.
func LineItems(buyerCountry string, terms entity.InvoiceTerms) []entity.LineItem {
	if buyerCountry == entity.CountryAustralia {
		return []entity.LineItem{
			{Kind: entity.LineItemProduct, Description: productDescription, Quantity: 1, Amount: terms.Fee},
		}
	}

	return []entity.LineItem{
		{Kind: entity.LineItemProduct, Description: productDescription, Quantity: 1, Amount: terms.FeeExclGST},
		{Kind: entity.LineItemGST, Description: gstDescription, Amount: terms.GST},
		{Kind: entity.LineItemTotal, Description: totalDescription, Amount: terms.Fee},
	}
}

// Builder turns a seller, a buyer and invoice terms into the three notices of
// one submission.
type Builder struct {
	vendor entity.Party
}

// New returns a Builder that uses vendor as the From block and the recipient
// of the vendor notice.
func New(vendor entity.Party) *Builder {
	return &Builder{vendor: vendor}
}

// Build renders the vendor, buyer and seller notices, in that order. The buyer
// and seller notices share one body.
func (b *Builder) Build(seller, buyer entity.Party, terms entity.InvoiceTerms) ([]entity.Notice, error) {
	items := LineItems(buyer.Country, terms)

	vendorBody, err := render(b.vendor, buyer, terms, items)
	if err != nil {
		return nil, fmt.Errorf("render vendor notice: %w", err)
	}

	sellerBody, err := render(seller, buyer, terms, items)
	if err != nil {
		return nil, fmt.Errorf("render seller notice: %w", err)
	}

	from := seller.Mailbox()

	return []entity.Notice{
		{
			Recipient: entity.RecipientVendor,
			From:      from,
			To:        b.vendor.Email,
			Subject:   fmt.Sprintf(subjectVendor, buyer.ContactName),
			Body:      vendorBody,
		},
		{
			Recipient: entity.RecipientBuyer,
			From:      from,
			To:        buyer.Email,
			Subject:   subjectBuyer,
			Body:      sellerBody,
		},
		{
			Recipient: entity.RecipientSeller,
			From:      from,
			To:        seller.Email,
			Subject:   fmt.Sprintf(subjectSeller, buyer.ContactName),
			Body:      sellerBody,
		},
	}, nil
}

type noticeData struct {
	From    entity.Party
	Buyer   entity.Party
	Number  string
	Date    string
	PostURL string
	Items   []entity.LineItem
}

func render(from, buyer entity.Party, terms entity.InvoiceTerms, items []entity.LineItem) (string, error) {
	var buf bytes.Buffer

	err := notice.Execute(&buf, noticeData{
		From:    from,
		Buyer:   buyer,
		Number:  terms.Number,
		Date:    terms.IssuedAt.Format(dateLayout),
		PostURL: terms.PostURL,
		Items:   items,
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
