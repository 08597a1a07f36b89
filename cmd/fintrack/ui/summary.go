package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fintrack/internal/api"
	"fintrack/internal/money"
)

// SummaryStats aggregates the expense list for the dashboard.
type SummaryStats struct {
	Total   float64
	Average float64
	Count   int
}

// Summarize computes totals over the list. Unparsable amounts count as
// zero toward the total but still count as records, matching the server's
// loose contract for the amount field.
func Summarize(expenses []api.Expense) SummaryStats {
	stats := SummaryStats{Count: len(expenses)}
	if len(expenses) == 0 {
		return stats
	}
	for _, e := range expenses {
		stats.Total += money.Parse(e.Amount)
	}
	stats.Average = stats.Total / float64(len(expenses))
	return stats
}

// RenderSummaryCards renders the three dashboard cards side by side.
func RenderSummaryCards(styles Styles, currency string, stats SummaryStats) string {
	card := func(label, value string) string {
		body := lipgloss.JoinVertical(lipgloss.Center,
			styles.Muted.Render(label),
			styles.Amount.Render(value),
		)
		return styles.Card.Render(body)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total Expenses", money.Format(currency, stats.Total)),
		card("Average Expense", money.Format(currency, stats.Average)),
		card("Entries", fmt.Sprintf("%d", stats.Count)),
	)
}

// RenderExpenseRow renders one list row: name, amount, one-line description.
func RenderExpenseRow(styles Styles, currency string, e api.Expense, selected bool) string {
	name := e.Name
	if selected {
		name = styles.Selected.Render("> " + name)
	} else {
		name = styles.Body.Render("  " + name)
	}

	amount := styles.Amount.Render(money.Format(currency, money.Parse(e.Amount)))
	desc := styles.Muted.Render(Truncate(e.Description, 48))

	return fmt.Sprintf("%s  %s\n    %s", name, amount, desc)
}

// Truncate shortens s to at most n runes, appending an ellipsis.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// RenderDivider renders a horizontal rule of the given width.
func RenderDivider(styles Styles, width int) string {
	if width < 1 {
		width = 1
	}
	return styles.Divider.Render(strings.Repeat("─", width))
}
