package entity

// Party is either end of an invoiced transaction: the seller (site operator,
// read from settings) or the buyer (poster, read from the submission).
type Party struct {
	Name        string // company or display name
	ContactName string
	Address     string
	Country     string
	Phone       string
	Email       string
}

// Address is a mailbox with an optional display name.
type Address struct {
	Name  string
	Email string
}

func (p Party) Mailbox() Address {
	name := p.Name
	if name == "" {
		name = p.ContactName
	}

	return Address{Name: name, Email: p.Email}
}
