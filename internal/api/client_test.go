package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// newTestServer returns a client pointed at a handler-backed server.
func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(ClientConfig{BaseURL: srv.URL})
	t.Cleanup(c.httpClient.CloseIdleConnections)
	return c
}

func TestLoginUserSuccess(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("username"); got != "jane@example.com" {
			t.Errorf("unexpected username filter %q", got)
		}
		json.NewEncoder(w).Encode([]User{
			{ID: "u1", Username: "jane@example.com", Password: "hunter2"},
		})
	})

	user, err := client.LoginUser(context.Background(), "jane@example.com", "hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user == nil || user.ID != "u1" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestLoginUserUnknownUsername(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]User{})
	})

	user, err := client.LoginUser(context.Background(), "nobody@example.com", "pw")
	if err != nil {
		t.Fatalf("not-found must not be an error, got %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil user, got %+v", user)
	}
}

func TestLoginUserWrongPassword(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]User{
			{ID: "u1", Username: "jane@example.com", Password: "hunter2"},
		})
	})

	user, err := client.LoginUser(context.Background(), "jane@example.com", "wrong")
	if err != nil {
		t.Fatalf("wrong password must not be an error, got %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil user, got %+v", user)
	}
}

func TestLoginUserServerError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	user, err := client.LoginUser(context.Background(), "jane@example.com", "hunter2")
	if err == nil {
		t.Fatal("expected an error for a 500 response")
	}
	if user != nil {
		t.Fatalf("expected nil user on error, got %+v", user)
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %T", err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("unexpected status: %d", statusErr.StatusCode)
	}
}

func TestFetchExpenses(t *testing.T) {
	want := []Expense{
		{ID: "1", Name: "Coffee", Amount: "4.50", Description: "Morning coffee"},
		{ID: "2", Name: "Lunch", Amount: "12.00", Description: "Team lunch"},
	}

	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/expenses" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(want)
	})

	got, err := client.FetchExpenses(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("expenses mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchExpense(t *testing.T) {
	want := Expense{ID: "7", Name: "Taxi", Amount: "23.40", Description: "Airport ride"}

	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/expenses/7" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(want)
	})

	got, err := client.FetchExpense(context.Background(), "7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("expense mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchExpenseNotFound(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "\"Not found\"", http.StatusNotFound)
	})

	_, err := client.FetchExpense(context.Background(), "404")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("unexpected status: %d", statusErr.StatusCode)
	}
}

func TestCreateExpense(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/expenses" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}

		var payload CreateExpensePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("bad payload: %v", err)
		}
		if payload.Name != "Books" || payload.Amount != "30.00" {
			t.Errorf("unexpected payload: %+v", payload)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Expense{
			ID:          "10",
			Name:        payload.Name,
			Amount:      payload.Amount,
			Description: payload.Description,
		})
	})

	got, err := client.CreateExpense(context.Background(), CreateExpensePayload{
		Name:        "Books",
		Amount:      "30.00",
		Description: "Paperbacks",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "10" {
		t.Errorf("expected server-assigned id, got %+v", got)
	}
}

func TestDeleteExpense(t *testing.T) {
	var deleted string
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("unexpected method %s", r.Method)
		}
		deleted = r.URL.Path
		json.NewEncoder(w).Encode(Expense{ID: "7"})
	})

	if err := client.DeleteExpense(context.Background(), "7"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != "/expenses/7" {
		t.Errorf("unexpected path %q", deleted)
	}
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	c := NewClient(ClientConfig{BaseURL: "http://example.test/api/"})
	if got := c.BaseURL(); got != "http://example.test/api" {
		t.Errorf("unexpected base URL %q", got)
	}
}
