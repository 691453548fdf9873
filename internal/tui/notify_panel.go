package tui

import (
	"fmt"

	"taskdeck/internal/model"
)

// panelState is the notification overlay. The cached batch lives in
// the poller; this only tracks the cursor.
type panelState struct {
	cursor int
}

func (ps panelState) clampCursor(visible int) panelState {
	if ps.cursor >= visible {
		ps.cursor = visible - 1
	}
	if ps.cursor < 0 {
		ps.cursor = 0
	}
	return ps
}

func (ps panelState) view(s Styles, notifications []model.Notification) string {
	out := s.Title.Render("Notifications") + "\n\n"

	if len(notifications) == 0 {
		out += s.Muted.Render("No notifications.") + "\n"
	}

	for i, n := range notifications {
		marker := "•"
		line := fmt.Sprintf("%s %s — %s", marker, n.Title, n.Message)
		if n.Read {
			line = s.Muted.Render(line)
		}
		if i == ps.cursor {
			line = s.Selected.Render("› ") + line
		} else {
			line = "  " + line
		}
		out += line + "\n"
		out += "    " + s.Muted.Render(n.CreatedAt.Format("2006-01-02 15:04")) + "\n"
	}

	out += "\n" + s.Help.Render("enter: mark read · A: mark all read · d: delete · n/esc: close")
	return s.Panel.Render(out)
}
