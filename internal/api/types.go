package api

// User is the identity record owned by the remote service. The mock API
// returns the password in plaintext; the field is kept for wire
// compatibility and never persisted locally.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	CreatedAt string `json:"createdAt"`
}

// Expense is a single expense record. Amount travels as a decimal string;
// parsing to a float is the caller's job wherever it is displayed or summed.
type Expense struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}

// CreateExpensePayload is the client-supplied part of a new expense.
// The server assigns ID and CreatedAt.
type CreateExpensePayload struct {
	Name        string `json:"name"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}
