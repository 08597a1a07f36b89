package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"fintrack/internal/api"
)

func sampleExpenses() []api.Expense {
	return []api.Expense{
		{ID: "1", Name: "Coffee", Amount: "4.50", Description: "Morning coffee"},
		{ID: "2", Name: "Lunch", Amount: "12.00", Description: "Team lunch"},
		{ID: "3", Name: "Taxi", Amount: "23.40", Description: "Airport ride"},
	}
}

func TestLoginLifecycle(t *testing.T) {
	t.Parallel()

	s := New()

	s.LoginStart()
	auth := s.Auth()
	if !auth.IsLoading {
		t.Error("expected IsLoading after LoginStart")
	}
	if auth.Error != "" {
		t.Errorf("expected no error after LoginStart, got %q", auth.Error)
	}

	user := api.User{ID: "u1", Username: "jane@example.com"}
	s.LoginSuccess(user)
	auth = s.Auth()
	if !auth.IsAuthenticated {
		t.Error("expected IsAuthenticated after LoginSuccess")
	}
	if auth.IsLoading {
		t.Error("expected IsLoading cleared after LoginSuccess")
	}
	if auth.User == nil || auth.User.ID != "u1" {
		t.Errorf("unexpected user: %+v", auth.User)
	}
}

func TestLoginFailureClearsUser(t *testing.T) {
	t.Parallel()

	s := New()
	s.LoginSuccess(api.User{ID: "u1", Username: "jane@example.com"})

	s.LoginStart()
	s.LoginFailure("Invalid username or password")

	auth := s.Auth()
	if auth.IsAuthenticated {
		t.Error("expected IsAuthenticated false after LoginFailure")
	}
	if auth.User != nil {
		t.Errorf("expected nil user after LoginFailure, got %+v", auth.User)
	}
	if auth.IsLoading {
		t.Error("expected IsLoading cleared after LoginFailure")
	}
	if auth.Error != "Invalid username or password" {
		t.Errorf("unexpected error: %q", auth.Error)
	}
}

func TestLoginStartClearsPriorError(t *testing.T) {
	t.Parallel()

	s := New()
	s.LoginFailure("Invalid username or password")
	s.LoginStart()

	if got := s.Auth().Error; got != "" {
		t.Errorf("expected error cleared on LoginStart, got %q", got)
	}
}

func TestLogoutLeavesExpenses(t *testing.T) {
	t.Parallel()

	s := New()
	s.LoginSuccess(api.User{ID: "u1"})
	s.FetchExpensesSuccess(sampleExpenses())

	s.Logout()

	auth := s.Auth()
	if auth.IsAuthenticated || auth.User != nil {
		t.Errorf("expected cleared auth after Logout, got %+v", auth)
	}

	if diff := cmp.Diff(sampleExpenses(), s.Expenses().Expenses); diff != "" {
		t.Errorf("expenses changed on logout (-want +got):\n%s", diff)
	}
}

func TestFetchReplacesList(t *testing.T) {
	t.Parallel()

	s := New()
	s.FetchExpensesSuccess(sampleExpenses())

	replacement := []api.Expense{{ID: "9", Name: "Rent", Amount: "800"}}
	s.FetchExpensesStart()
	s.FetchExpensesSuccess(replacement)

	state := s.Expenses()
	if diff := cmp.Diff(replacement, state.Expenses); diff != "" {
		t.Errorf("list not replaced (-want +got):\n%s", diff)
	}
	if state.IsLoading {
		t.Error("expected IsLoading cleared after success")
	}
}

func TestFetchFailureLeavesListIntact(t *testing.T) {
	t.Parallel()

	s := New()
	s.FetchExpensesSuccess(sampleExpenses())

	s.FetchExpensesStart()
	s.FetchExpensesFailure("Failed to load expenses")

	state := s.Expenses()
	if diff := cmp.Diff(sampleExpenses(), state.Expenses); diff != "" {
		t.Errorf("list changed on failure (-want +got):\n%s", diff)
	}
	if state.Error != "Failed to load expenses" {
		t.Errorf("unexpected error: %q", state.Error)
	}
	if state.IsLoading {
		t.Error("expected IsLoading cleared after failure")
	}
}

func TestAddExpenseAppends(t *testing.T) {
	t.Parallel()

	s := New()
	s.FetchExpensesSuccess(sampleExpenses())

	added := api.Expense{ID: "4", Name: "Books", Amount: "30.00"}
	s.AddExpense(added)

	want := append(sampleExpenses(), added)
	if diff := cmp.Diff(want, s.Expenses().Expenses); diff != "" {
		t.Errorf("append order wrong (-want +got):\n%s", diff)
	}
}

func TestRemoveExpense(t *testing.T) {
	t.Parallel()

	s := New()
	s.FetchExpensesSuccess(sampleExpenses())

	s.RemoveExpense("2")

	want := []api.Expense{
		{ID: "1", Name: "Coffee", Amount: "4.50", Description: "Morning coffee"},
		{ID: "3", Name: "Taxi", Amount: "23.40", Description: "Airport ride"},
	}
	if diff := cmp.Diff(want, s.Expenses().Expenses); diff != "" {
		t.Errorf("wrong entry removed (-want +got):\n%s", diff)
	}
}

func TestRemoveExpenseUnknownIDIsNoop(t *testing.T) {
	t.Parallel()

	s := New()
	s.FetchExpensesSuccess(sampleExpenses())

	s.RemoveExpense("nope")

	if diff := cmp.Diff(sampleExpenses(), s.Expenses().Expenses); diff != "" {
		t.Errorf("list changed (-want +got):\n%s", diff)
	}
}

func TestRemoveExpenseClearsMatchingSelection(t *testing.T) {
	t.Parallel()

	s := New()
	s.FetchExpensesSuccess(sampleExpenses())
	s.SelectExpense(sampleExpenses()[1])

	s.RemoveExpense("2")

	if got := s.Expenses().SelectedExpense; got != nil {
		t.Errorf("expected selection cleared, got %+v", got)
	}
}

func TestSelectAndClearExpense(t *testing.T) {
	t.Parallel()

	s := New()
	target := sampleExpenses()[0]
	s.SelectExpense(target)

	got := s.Expenses().SelectedExpense
	if got == nil {
		t.Fatal("expected a selected expense")
	}
	if diff := cmp.Diff(target, *got); diff != "" {
		t.Errorf("selection mismatch (-want +got):\n%s", diff)
	}

	s.ClearSelectedExpense()
	if s.Expenses().SelectedExpense != nil {
		t.Error("expected selection cleared")
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	t.Parallel()

	s := New()
	s.FetchExpensesSuccess(sampleExpenses())
	s.LoginSuccess(api.User{ID: "u1", Username: "jane@example.com"})

	snap := s.Expenses()
	snap.Expenses[0].Name = "mutated"

	if got := s.Expenses().Expenses[0].Name; got != "Coffee" {
		t.Errorf("snapshot mutation leaked into store: %q", got)
	}

	auth := s.Auth()
	auth.User.Username = "mutated"
	if got := s.Auth().User.Username; got != "jane@example.com" {
		t.Errorf("auth snapshot mutation leaked into store: %q", got)
	}
}
