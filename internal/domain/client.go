package domain

// Client represents a client of the bank. A client owns zero or more
// accounts; ownership is recorded on the Account side via ClientID.
type Client struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	AnnualIncome int    `json:"annualIncome"`
}
