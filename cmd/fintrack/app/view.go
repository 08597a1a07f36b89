package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fintrack/cmd/fintrack/ui"
	"fintrack/internal/api"
	"fintrack/internal/money"
	"fintrack/internal/validate"
)

// dashboardRecentCount caps the recent-activity list on the dashboard.
const dashboardRecentCount = 3

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var content string
	switch m.screen {
	case ScreenLogin:
		content = m.viewLogin()
	case ScreenDashboard:
		content = m.viewDashboard()
	case ScreenExpenses:
		content = m.viewExpenses()
	case ScreenDetail:
		content = m.viewDetail()
	case ScreenAddExpense:
		content = m.viewAddExpense()
	case ScreenSettings:
		content = m.viewSettings()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.styles.Content.Render(content),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	title := "FinTrack"
	if m.screen != ScreenLogin {
		title = fmt.Sprintf("FinTrack · %s", m.screen)
	}

	header := m.styles.Header.Render(title)

	auth := m.store.Auth()
	if auth.IsAuthenticated && auth.User != nil {
		who := m.styles.Muted.Render(auth.User.Username)
		gap := m.width - lipgloss.Width(header) - lipgloss.Width(who) - 2
		if gap > 0 {
			return header + strings.Repeat(" ", gap) + who
		}
	}
	return header
}

func (m Model) renderFooter() string {
	var parts []string

	if m.statusMessage != "" {
		parts = append(parts, m.styles.Success.Render(m.statusMessage))
	}
	if m.localError != "" {
		parts = append(parts, m.styles.Error.Render(m.localError))
	}

	if m.prefs.ShowHints {
		parts = append(parts, m.styles.Muted.Render(m.footerHints()))
	}

	return m.styles.Footer.Render(strings.Join(parts, "  "))
}

func (m Model) footerHints() string {
	switch m.screen {
	case ScreenLogin:
		return "tab: next field · enter: sign in · esc: quit"
	case ScreenDashboard:
		return "1-4: screens · r: refresh · ?: help · q: quit"
	case ScreenExpenses:
		return "↑/↓: move · enter: details · r: refresh · 3: add · esc: back"
	case ScreenDetail:
		return "d: delete · esc: back"
	case ScreenAddExpense:
		return "tab: next field · enter: save · esc: cancel"
	case ScreenSettings:
		return "t: theme · c: confirm delete · h: hints · l: log out · esc: back"
	}
	return ""
}

// =============================================================================
// SCREENS
// =============================================================================

func (m Model) viewLogin() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Sign in"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Label.Render("Email"))
	b.WriteString("\n")
	b.WriteString(m.styles.Input.Render(m.loginForm.username.View()))
	b.WriteString("\n")
	if msg, ok := m.loginForm.errors[validate.FieldUsername]; ok {
		b.WriteString(m.styles.FieldError.Render(msg))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.styles.Label.Render("Password"))
	b.WriteString("\n")
	b.WriteString(m.styles.Input.Render(m.loginForm.password.View()))
	b.WriteString("\n")
	if msg, ok := m.loginForm.errors[validate.FieldPassword]; ok {
		b.WriteString(m.styles.FieldError.Render(msg))
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.Muted.Render(" Signing in..."))
	} else if authErr := m.store.Auth().Error; authErr != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(authErr))
	}

	return b.String()
}

func (m Model) viewDashboard() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Dashboard"))
	b.WriteString("\n")

	state := m.store.Expenses()

	if state.IsLoading {
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.Muted.Render(" Loading expenses..."))
		return b.String()
	}
	if state.Error != "" {
		b.WriteString(m.styles.Error.Render(state.Error))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Muted.Render("Press r to retry."))
		return b.String()
	}

	stats := ui.Summarize(state.Expenses)
	b.WriteString(ui.RenderSummaryCards(m.styles, m.Currency(), stats))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Subtitle.Render("Recent activity"))
	b.WriteString("\n")

	if len(state.Expenses) == 0 {
		b.WriteString(m.styles.Muted.Render("No expenses yet. Press 3 to add one."))
		return b.String()
	}

	recent := state.Expenses
	if len(recent) > dashboardRecentCount {
		recent = recent[len(recent)-dashboardRecentCount:]
	}
	// Newest first.
	for i := len(recent) - 1; i >= 0; i-- {
		b.WriteString(ui.RenderExpenseRow(m.styles, m.Currency(), recent[i], false))
		b.WriteString("\n")
	}

	if len(state.Expenses) > dashboardRecentCount {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("Press 2 to view all %d expenses.", len(state.Expenses))))
	}

	return b.String()
}

func (m Model) viewExpenses() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Expenses"))
	b.WriteString("\n")

	state := m.store.Expenses()

	if state.IsLoading {
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.Muted.Render(" Loading expenses..."))
		return b.String()
	}
	if state.Error != "" {
		b.WriteString(m.styles.Error.Render(state.Error))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Muted.Render("Press r to retry."))
		return b.String()
	}
	if len(state.Expenses) == 0 {
		b.WriteString(m.styles.Muted.Render("No expenses yet. Press 3 to add one."))
		return b.String()
	}

	for i, e := range state.Expenses {
		b.WriteString(ui.RenderExpenseRow(m.styles, m.Currency(), e, i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	total := money.Total(amounts(state.Expenses))
	b.WriteString(m.styles.Bold.Render("Total: "))
	b.WriteString(m.styles.Amount.Render(money.Format(m.Currency(), total)))

	return b.String()
}

func (m Model) viewDetail() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Expense details"))
	b.WriteString("\n")

	selected := m.store.Expenses().SelectedExpense
	if selected == nil {
		b.WriteString(m.styles.Muted.Render("No expense selected."))
		return b.String()
	}

	var card strings.Builder
	card.WriteString(m.styles.Bold.Render(selected.Name))
	card.WriteString("\n")
	card.WriteString(m.styles.Amount.Render(money.Format(m.Currency(), money.Parse(selected.Amount))))
	card.WriteString("\n\n")
	card.WriteString(m.styles.Body.Render(selected.Description))
	if selected.CreatedAt != "" {
		card.WriteString("\n\n")
		card.WriteString(m.styles.Muted.Render("Created " + selected.CreatedAt))
	}
	b.WriteString(m.styles.CardWide.Render(card.String()))

	if m.detailLoading {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.Muted.Render(" Refreshing..."))
	}

	if m.deleting {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.Muted.Render(" Deleting..."))
	} else if m.confirmDelete {
		b.WriteString("\n")
		b.WriteString(m.styles.Warning.Render("Delete this expense? (y/n)"))
	}

	return b.String()
}

func (m Model) viewAddExpense() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Add expense"))
	b.WriteString("\n\n")

	field := func(label string, view string, key string) {
		b.WriteString(m.styles.Label.Render(label))
		b.WriteString("\n")
		b.WriteString(m.styles.Input.Render(view))
		b.WriteString("\n")
		if msg, ok := m.expenseForm.errors[key]; ok {
			b.WriteString(m.styles.FieldError.Render(msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	field("Name", m.expenseForm.name.View(), validate.FieldName)
	field("Amount", m.expenseForm.amount.View(), validate.FieldAmount)
	field("Description", m.expenseForm.description.View(), validate.FieldDescription)

	if m.submitting {
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.Muted.Render(" Saving..."))
	}

	return b.String()
}

func (m Model) viewSettings() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Settings"))
	b.WriteString("\n")

	auth := m.store.Auth()
	if auth.User != nil {
		var card strings.Builder
		card.WriteString(m.styles.Bold.Render("Signed in as"))
		card.WriteString("\n")
		card.WriteString(m.styles.Body.Render(auth.User.Username))
		b.WriteString(m.styles.CardWide.Render(card.String()))
		b.WriteString("\n")
	}

	row := func(key, label, value string) {
		b.WriteString(m.styles.Selected.Render(key))
		b.WriteString("  ")
		b.WriteString(m.styles.Body.Render(label))
		b.WriteString(": ")
		b.WriteString(m.styles.Bold.Render(value))
		b.WriteString("\n")
	}

	themeName := "light"
	if m.styles.Theme.IsDark {
		themeName = "dark"
	}
	row("t", "Theme", themeName)
	row("c", "Confirm before delete", onOff(m.prefs.ConfirmDelete))
	row("h", "Show key hints", onOff(m.prefs.ShowHints))

	b.WriteString("\n")
	if m.confirmLogout {
		b.WriteString(m.styles.Warning.Render("Log out? (y/n)"))
	} else {
		b.WriteString(m.styles.Selected.Render("l"))
		b.WriteString("  ")
		b.WriteString(m.styles.Body.Render("Log out"))
	}

	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func amounts(expenses []api.Expense) []string {
	raw := make([]string, len(expenses))
	for i, e := range expenses {
		raw[i] = e.Amount
	}
	return raw
}
