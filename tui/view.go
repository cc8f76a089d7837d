package tui

import (
	"fmt"
	"strings"

	"fetchrecipes/recipeslist"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(TextTitle))
	b.WriteString("\n")

	b.WriteString(m.getStateText())
	b.WriteString("\n\n")

	if m.ShowAlert && m.State.LastError != nil {
		alert := ErrorStyle.Render(m.State.LastError.Error()) + "\n" + InfoStyle.Render(TextAlertHint)
		b.WriteString(AlertStyle.Render(alert))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderList())
	b.WriteString("\n")

	if n := len(m.State.Logs); n > 0 {
		b.WriteString(InfoStyle.Render("📝 Recent Activity:"))
		b.WriteString("\n")
		for _, entry := range m.State.Logs[max(0, n-3):] {
			b.WriteString(InfoStyle.Render(fmt.Sprintf("   %s %s", entry.Timestamp.Format("15:04:05"), entry.Message)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(FooterStyle.Render(TextFooter))
	return b.String()
}

// getStateText returns the status line for the current phase
func (m Model) getStateText() string {
	switch m.State.Phase {
	case recipeslist.PhaseIdle:
		return StatusStyle.Render(TextIdle)
	case recipeslist.PhaseLoading:
		return LoadingStyle.Render(fmt.Sprintf(TextLoading, m.State.RequestType))
	case recipeslist.PhaseLoaded:
		return StatusStyle.Render(fmt.Sprintf(TextLoaded, m.State.Count()))
	case recipeslist.PhaseErrored:
		return ErrorStyle.Render(TextErrored)
	default:
		return ""
	}
}

// renderList draws cuisine headers and recipes, keeping the cursor in view
func (m Model) renderList() string {
	if len(m.State.Recipes) == 0 {
		return InfoStyle.Render(TextEmptyList) + "\n"
	}

	var lines []string
	cursorLine := 0
	index := 0
	for _, g := range m.State.Groups() {
		lines = append(lines, CuisineStyle.Render(g.Cuisine))
		for _, r := range g.Recipes {
			line := "  " + r.Name
			if r.VideoURL != nil {
				line += " " + VideoStyle.Render("▶")
			}
			if index == m.Cursor {
				cursorLine = len(lines)
				line = SelectedStyle.Render("› " + r.Name)
			}
			lines = append(lines, line)
			index++
		}
	}

	return strings.Join(visibleWindow(lines, cursorLine, m.listHeight()), "\n") + "\n"
}

// listHeight is the number of list rows that fit, 0 meaning unbounded
func (m Model) listHeight() int {
	if m.Height == 0 {
		return 0
	}
	return max(3, m.Height-14)
}

func visibleWindow(lines []string, focus, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	start := focus - height/2
	start = max(0, min(start, len(lines)-height))
	return lines[start : start+height]
}
