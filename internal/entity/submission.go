package entity

// Submission is what the poster sends once the client-side payment is done.
type Submission struct {
	Buyer      Party
	Fee        string
	FeeExclGST string
	GST        string
	Invoice    string
	PostURL    string
}
