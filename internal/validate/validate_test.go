package validate

import "testing"

func TestLoginFormValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		form     LoginForm
		wantErrs map[string]string
	}{
		{
			name:     "valid",
			form:     LoginForm{Username: "jane@example.com", Password: "hunter2"},
			wantErrs: map[string]string{},
		},
		{
			name: "not an email",
			form: LoginForm{Username: "not-an-email", Password: "hunter2"},
			wantErrs: map[string]string{
				FieldUsername: "Please enter a valid email address",
			},
		},
		{
			name: "empty password",
			form: LoginForm{Username: "jane@example.com", Password: ""},
			wantErrs: map[string]string{
				FieldPassword: "Password is required",
			},
		},
		{
			name: "both empty",
			form: LoginForm{},
			wantErrs: map[string]string{
				FieldUsername: "Please enter a valid email address",
				FieldPassword: "Password is required",
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := tc.form.Validate()
			if len(got) != len(tc.wantErrs) {
				t.Fatalf("got %d errors, want %d: %v", len(got), len(tc.wantErrs), got)
			}
			for field, msg := range tc.wantErrs {
				if got[field] != msg {
					t.Errorf("field %q: got %q, want %q", field, got[field], msg)
				}
			}
		})
	}
}

func TestExpenseFormValidate(t *testing.T) {
	t.Parallel()

	valid := ExpenseForm{Name: "Coffee", Amount: "4.50", Description: "Morning coffee"}
	if errs := valid.Validate(); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}

	empty := ExpenseForm{}
	errs := empty.Validate()
	if len(errs) != 3 {
		t.Errorf("expected 3 errors for an empty form, got %v", errs)
	}
}

func TestExpenseFormAmountRule(t *testing.T) {
	t.Parallel()

	rejected := []string{"0", "-5", "abc", "", " "}
	for _, amount := range rejected {
		form := ExpenseForm{Name: "x", Amount: amount, Description: "y"}
		if _, ok := form.Validate()[FieldAmount]; !ok {
			t.Errorf("amount %q: expected rejection", amount)
		}
	}

	accepted := []string{"0.01", "100", "4.50", " 7 "}
	for _, amount := range accepted {
		form := ExpenseForm{Name: "x", Amount: amount, Description: "y"}
		if msg, ok := form.Validate()[FieldAmount]; ok {
			t.Errorf("amount %q: unexpected rejection %q", amount, msg)
		}
	}
}
