// Package app provides the interactive TUI for fintrack.
// The functionality is split across files:
//   - model.go: Types, messages, Init (this file)
//   - update.go: Update loop and API commands
//   - forms.go: Login and add-expense form state
//   - view.go: Rendering functions
//   - help.go: Markdown help overlay
package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"fintrack/cmd/fintrack/ui"
	"fintrack/internal/api"
	"fintrack/internal/config"
	"fintrack/internal/logging"
	"fintrack/internal/store"
	"fintrack/internal/ux"
)

// Screen identifies which view is active.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenDashboard
	ScreenExpenses
	ScreenDetail
	ScreenAddExpense
	ScreenSettings
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenDashboard:
		return "dashboard"
	case ScreenExpenses:
		return "expenses"
	case ScreenDetail:
		return "detail"
	case ScreenAddExpense:
		return "add-expense"
	case ScreenSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// Model is the main model for the interactive client. The store is the
// single source of truth for session and expense data; fields here are
// ephemeral view state only (cursor positions, in-flight flags, form
// contents).
type Model struct {
	// Backend
	client *api.Client
	store  *store.Store

	// Config
	cfg   *config.Config
	prefs ux.Preferences

	// UI components
	styles   ui.Styles
	spinner  spinner.Model
	renderer *glamour.TermRenderer

	screen Screen
	width  int
	height int
	ready  bool

	// Forms
	loginForm   loginForm
	expenseForm expenseForm

	// Ephemeral view state
	cursor         int    // expense list cursor
	submitting     bool   // login or add-expense in flight
	refreshing     bool   // expense re-fetch triggered from a loaded list
	deleting       bool   // delete in flight
	confirmDelete  bool   // detail view waiting for y/n
	confirmLogout  bool   // settings view waiting for y/n
	detailLoading  bool   // detail fetch in flight
	localError     string // screen-local error, not store state
	statusMessage  string // transient confirmation line
	showHelp       bool
	stateDir       string
}

// Messages for tea updates. Each API command settles as exactly one of
// these; the Update loop turns them into store operations.
type (
	loginResultMsg struct {
		user *api.User
		err  error
	}

	expensesLoadedMsg struct {
		expenses []api.Expense
		err      error
	}

	expenseLoadedMsg struct {
		expense api.Expense
		err     error
	}

	expenseCreatedMsg struct {
		expense api.Expense
		err     error
	}

	expenseDeletedMsg struct {
		id  string
		err error
	}
)

// New assembles the interactive model.
func New(cfg *config.Config, prefs ux.Preferences, stateDir string, client *api.Client, st *store.Store) Model {
	theme := ui.ThemeByName(cfg.UI.Theme)
	if prefs.Theme != "" && prefs.Theme != "auto" {
		theme = ui.ThemeByName(prefs.Theme)
	}
	styles := ui.NewStyles(theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Success

	m := Model{
		client:      client,
		store:       st,
		cfg:         cfg,
		prefs:       prefs,
		styles:      styles,
		spinner:     sp,
		screen:      ScreenLogin,
		loginForm:   newLoginForm(),
		expenseForm: newExpenseForm(),
		stateDir:    stateDir,
	}

	return m
}

// Currency returns the symbol used for all formatted amounts.
func (m Model) Currency() string {
	if m.prefs.Currency != "" {
		return m.prefs.Currency
	}
	return m.cfg.UI.Currency
}

// Init starts the spinner and focuses the login form.
func (m Model) Init() tea.Cmd {
	logging.UI("screen: %s", m.screen)
	return tea.Batch(
		m.spinner.Tick,
		m.loginForm.Focus(),
	)
}

// Run starts the interactive client.
func Run(cfg *config.Config, prefs ux.Preferences, stateDir string, client *api.Client, st *store.Store) error {
	model := New(cfg, prefs, stateDir, client, st)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
