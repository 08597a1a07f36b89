// Package store is the application state container: the single source of
// truth for who is logged in and what expenses exist. State is split into
// two independent slices (auth, expenses) mutated only through the named
// operations below. Each operation applies as one atomic step; snapshot
// accessors hand out copies so views can never write state directly.
package store

import (
	"sync"

	"fintrack/internal/api"
	"fintrack/internal/logging"
)

// AuthState is the auth slice. IsAuthenticated is true iff User is non-nil
// and the last login attempt succeeded. At most one of IsLoading /
// settled-with-user / settled-with-error holds at a time.
type AuthState struct {
	User            *api.User
	IsAuthenticated bool
	IsLoading       bool
	Error           string // empty means no error
}

// ExpenseState is the expense slice. Expenses reflects the last successful
// fetch plus any local adds/removes since; a failed fetch leaves it
// untouched. SelectedExpense is a copy used by the detail view, never a
// live reference into Expenses.
type ExpenseState struct {
	Expenses        []api.Expense
	SelectedExpense *api.Expense
	IsLoading       bool
	Error           string
}

// Store owns both slices. All mutation is funnelled through its methods
// and serialized by the mutex; there is no other way in.
type Store struct {
	mu       sync.Mutex
	auth     AuthState
	expenses ExpenseState
}

// New returns an empty store: logged out, no expenses.
func New() *Store {
	return &Store{}
}

// Auth returns a snapshot of the auth slice.
func (s *Store) Auth() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.auth
	if s.auth.User != nil {
		u := *s.auth.User
		snap.User = &u
	}
	return snap
}

// Expenses returns a snapshot of the expense slice.
func (s *Store) Expenses() ExpenseState {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.expenses
	snap.Expenses = append([]api.Expense(nil), s.expenses.Expenses...)
	if s.expenses.SelectedExpense != nil {
		e := *s.expenses.SelectedExpense
		snap.SelectedExpense = &e
	}
	return snap
}

// =============================================================================
// AUTH SLICE OPERATIONS
// =============================================================================

// LoginStart marks a login attempt in flight and clears any prior error.
func (s *Store) LoginStart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth.IsLoading = true
	s.auth.Error = ""
	logging.StoreDebug("auth: login start")
}

// LoginSuccess settles the auth slice with the authenticated user.
func (s *Store) LoginSuccess(user api.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := user
	s.auth.User = &u
	s.auth.IsAuthenticated = true
	s.auth.IsLoading = false
	s.auth.Error = ""
	logging.Store("auth: login success (user=%s)", user.ID)
}

// LoginFailure settles the auth slice with an error message.
func (s *Store) LoginFailure(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth.User = nil
	s.auth.IsAuthenticated = false
	s.auth.IsLoading = false
	s.auth.Error = msg
	logging.Store("auth: login failure (%s)", msg)
}

// Logout clears the auth slice back to idle. The expense slice is left as
// is: the upstream design never cleared it on logout, and that behavior is
// preserved pending a product decision.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = AuthState{}
	logging.Store("auth: logout")
}

// =============================================================================
// EXPENSE SLICE OPERATIONS
// =============================================================================

// FetchExpensesStart marks a fetch in flight and clears any prior error.
// The current list stays visible until the fetch settles.
func (s *Store) FetchExpensesStart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses.IsLoading = true
	s.expenses.Error = ""
	logging.StoreDebug("expenses: fetch start")
}

// FetchExpensesSuccess replaces the entire list with the fetched one.
func (s *Store) FetchExpensesSuccess(expenses []api.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses.Expenses = append([]api.Expense(nil), expenses...)
	s.expenses.IsLoading = false
	s.expenses.Error = ""
	logging.Store("expenses: fetch success (%d records)", len(expenses))
}

// FetchExpensesFailure records the error and leaves the prior list intact.
func (s *Store) FetchExpensesFailure(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses.IsLoading = false
	s.expenses.Error = msg
	logging.Store("expenses: fetch failure (%s)", msg)
}

// AddExpense appends to the end of the current list. No dedup, no re-sort:
// server order plus local appends.
func (s *Store) AddExpense(expense api.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses.Expenses = append(s.expenses.Expenses, expense)
	logging.Store("expenses: add %s", expense.ID)
}

// RemoveExpense filters out the entry with the matching id. Ids are unique
// server-side, so at most one entry goes.
func (s *Store) RemoveExpense(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtered := s.expenses.Expenses[:0]
	for _, e := range s.expenses.Expenses {
		if e.ID != id {
			filtered = append(filtered, e)
		}
	}
	s.expenses.Expenses = filtered
	if s.expenses.SelectedExpense != nil && s.expenses.SelectedExpense.ID == id {
		s.expenses.SelectedExpense = nil
	}
	logging.Store("expenses: remove %s", id)
}

// SelectExpense sets the detail-view pointer to a copy of the expense.
func (s *Store) SelectExpense(expense api.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := expense
	s.expenses.SelectedExpense = &e
}

// ClearSelectedExpense clears the detail-view pointer.
func (s *Store) ClearSelectedExpense() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses.SelectedExpense = nil
}
