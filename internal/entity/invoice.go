package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceTerms are the monetary terms of one submission. Fee figures are
// pre-formatted by the client and rendered verbatim; GST is never computed here.
type InvoiceTerms struct {
	Number     string
	IssuedAt   time.Time
	Fee        string // total fee, also the ETH total of the GST layout
	FeeExclGST string
	GST        string
	PostURL    string
}

// CheckGST verifies FeeExclGST + GST == Fee when all three figures are plain
// decimals (an optional trailing currency code such as "ETH" is ignored).
// Figures that are not numeric are not checked.
func (t InvoiceTerms) CheckGST() error {
	fee, ok := parseAmount(t.Fee)
	if !ok {
		return nil
	}

	exclGST, ok := parseAmount(t.FeeExclGST)
	if !ok {
		return nil
	}

	gst, ok := parseAmount(t.GST)
	if !ok {
		return nil
	}

	if !exclGST.Add(gst).Equal(fee) {
		return fmt.Errorf("%w: %s + %s != %s", ErrInvalidArgument, exclGST, gst, fee)
	}

	return nil
}

func parseAmount(s string) (decimal.Decimal, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(fields[0])
	if err != nil {
		return decimal.Decimal{}, false
	}

	return d, true
}

type LineItemKind string

const (
	LineItemProduct LineItemKind = "item"
	LineItemGST     LineItemKind = "gst"
	LineItemTotal   LineItemKind = "total"
)

// LineItem is one row of the invoice table.
type LineItem struct {
	Kind        LineItemKind
	Description string
	Quantity    int // zero for GST and total rows
	Amount      string
}
