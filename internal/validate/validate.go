// Package validate holds the declarative form rules checked before any
// submission reaches the network. Each schema returns a map from field name
// to the first violated rule's message; an empty map means the form may be
// submitted.
package validate

import (
	"regexp"
	"strconv"
	"strings"
)

// Field names shared between the forms and their error maps.
const (
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldName        = "name"
	FieldAmount      = "amount"
	FieldDescription = "description"
)

// emailPattern is deliberately permissive: one @, something on both sides,
// a dot in the domain. The backend is the authority on real addresses.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// LoginForm is the login screen's input.
type LoginForm struct {
	Username string
	Password string
}

// Validate checks the login schema: username must look like an email,
// password must be non-empty.
func (f LoginForm) Validate() map[string]string {
	errs := make(map[string]string)

	if !emailPattern.MatchString(strings.TrimSpace(f.Username)) {
		errs[FieldUsername] = "Please enter a valid email address"
	}
	if f.Password == "" {
		errs[FieldPassword] = "Password is required"
	}

	return errs
}

// ExpenseForm is the add-expense screen's input.
type ExpenseForm struct {
	Name        string
	Amount      string
	Description string
}

// Validate checks the expense schema: name and description non-empty,
// amount a float strictly greater than zero.
func (f ExpenseForm) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(f.Name) == "" {
		errs[FieldName] = "Name is required"
	}
	if !amountIsPositive(f.Amount) {
		errs[FieldAmount] = "Amount must be a positive number"
	}
	if strings.TrimSpace(f.Description) == "" {
		errs[FieldDescription] = "Description is required"
	}

	return errs
}

func amountIsPositive(raw string) bool {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return false
	}
	return n > 0
}
