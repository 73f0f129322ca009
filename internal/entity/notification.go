package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Recipient identifies which of the three parties a notice is addressed to.
type Recipient string

const (
	RecipientVendor Recipient = "vendor"
	RecipientBuyer  Recipient = "buyer"
	RecipientSeller Recipient = "seller"
)

// Notice is one rendered HTML email.
type Notice struct {
	Recipient Recipient
	From      Address
	To        string
	Subject   string
	Body      string
}

type DeliveryStatus string

const (
	DeliveryStatusSent   DeliveryStatus = "sent"
	DeliveryStatusFailed DeliveryStatus = "failed"
)

// Delivery is the outcome of sending one Notice.
type Delivery struct {
	ID            uuid.UUID
	InvoiceNumber string
	Notice        Notice
	Status        DeliveryStatus
	Attempts      int
	LastError     string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Err is the error of the latest attempt. It is not persisted.
	Err error
}

// InvoiceNotified is published once the fan-out of a submission is done.
type InvoiceNotified struct {
	InvoiceNumber string
	BuyerEmail    string
	Sent          int
	Failed        int
	NotifiedAt    time.Time
}
