package domain

// Account represents a bank account owned by a single client.
// IDs are store-assigned; ClientID is set at creation and immutable after.
type Account struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Balance  int    `json:"balance"`
	ClientID int    `json:"clientId"`
}
