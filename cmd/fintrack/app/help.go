package app

const helpMarkdown = `# FinTrack Help

## Screens

| Key | Screen |
|-----|--------|
| 1 | Dashboard |
| 2 | Expenses |
| 3 | Add expense |
| 4 | Settings |

## Expenses

- **up/down** or **k/j** — move the cursor
- **enter** — open the selected expense
- **r** — refresh from the server
- **d** — delete the open expense

## Forms

- **tab** / **shift+tab** — move between fields
- **enter** — submit
- **esc** — cancel

## Everywhere

- **?** — toggle this help
- **ctrl+c** — quit
`

func (m Model) renderHelp() string {
	title := m.styles.Title.Render("Help")
	body := m.safeRenderMarkdown(helpMarkdown)
	hint := m.styles.Muted.Render("Press ? or esc to close.")
	return m.styles.Content.Render(title + "\n" + body + "\n" + hint)
}

// safeRenderMarkdown renders markdown with panic recovery; glamour can
// panic on pathological input, and raw text is a fine fallback.
func (m Model) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		rendered, err := m.renderer.Render(content)
		if err == nil {
			return rendered
		}
	}
	return content
}
