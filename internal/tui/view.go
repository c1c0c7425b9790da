package tui

import (
	"strings"
	
	"github.com/charmbracelet/lipgloss"
	
	"github.com/autosys-vn/autosys-client/internal/notification"
	"github.com/autosys-vn/autosys-client/internal/util"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62")).Padding(0, 1)
	badgeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("196")).Padding(0, 1)
	
	itemStyle     = lipgloss.NewStyle().PaddingLeft(2)
	selectedStyle = lipgloss.NewStyle().PaddingLeft(0).Foreground(lipgloss.Color("170")).SetString("> ")
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	
	toastStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// kindIcon chọn icon theo loại thông báo; không có nhánh hành vi nào khác.
func kindIcon(kind string) string {
	switch kind {
	case notification.KindFineIssued:
		return "🚨"
	case notification.KindInspectionResult:
		return "🔧"
	default:
		return "🔔"
	}
}

func (m Model) View() string {
	var b strings.Builder
	
	b.WriteString(headerStyle.Render("AutoSystem"))
	b.WriteString(" ")
	b.WriteString(badgeStyle.Render("🔔 " + util.FormatBadgeCount(m.snapshot.Unread)))
	b.WriteString("\n\n")
	
	if len(m.snapshot.Preview) == 0 {
		b.WriteString(dimStyle.Render("  No unseen notifications"))
		b.WriteString("\n")
	}
	
	for i, n := range m.snapshot.Preview {
		line := kindIcon(n.Kind) + " " + n.Title
		if n.Message != "" {
			line += dimStyle.Render(" — " + util.TruncateContent(n.Message, 60))
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("") + line)
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	
	for _, t := range m.toasts {
		body := t.Title
		if t.Message != "" {
			body += "\n" + util.TruncateContent(t.Message, 60)
		}
		if age := t.Age(); age != "" {
			body += "\n" + dimStyle.Render(age)
		}
		b.WriteString("\n")
		b.WriteString(toastStyle.Render(kindIcon(t.Kind) + " " + body))
		b.WriteString("\n")
	}
	
	if m.lastErr != nil {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("last action failed: " + m.lastErr.Error()))
		b.WriteString("\n")
	}
	
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter: mark seen · a: mark all · r: refresh · d: dismiss toast · q: quit"))
	
	return b.String()
}
