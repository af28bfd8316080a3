package tui

import (
	"fmt"
	"strings"

	"github.com/lox/tenpin/internal/bowling"
	"github.com/lox/tenpin/internal/scorer"
)

const (
	regularCellWidth = 3
	lastCellWidth    = 5
	totalCellWidth   = 5
	separator        = "│"
)

// RenderScoreboard draws one marks row and one running-total row per player.
// Leaders are starred and the player whose turn it is is highlighted.
func RenderScoreboard(match *bowling.Match, theme Theme) string {
	var b strings.Builder

	b.WriteString(theme.Header.Render(fmt.Sprintf(" Match %s ", match.ID())))
	b.WriteString("\n")
	b.WriteString(theme.Info.Render(headerRow()))
	b.WriteString("\n")

	players := match.Players()
	if len(players) == 0 {
		b.WriteString(theme.Info.Render("No players yet, type: add <name>"))
		return b.String()
	}

	current, _ := match.CurrentPlayer()
	for _, name := range players {
		frames, err := match.Frames(name)
		if err != nil {
			continue
		}
		total, _ := match.TotalScore(name)

		nameStyle := theme.Player
		switch {
		case match.IsLeader(name):
			nameStyle = theme.Leader
		case name == current && !match.IsFinished():
			nameStyle = theme.Current
		}

		marker := " "
		if match.IsLeader(name) {
			marker = "*"
		}
		label := fmt.Sprintf("%-*s%s", scorer.MaxNameLength, name, marker)

		marks, totals := frameRows(frames)
		b.WriteString(nameStyle.Render(label))
		b.WriteString(theme.Frame.Render(marks))
		b.WriteString(theme.Total.Render(fmt.Sprintf("%*d", totalCellWidth, total)))
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", scorer.MaxNameLength+1))
		b.WriteString(theme.Total.Render(totals))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func headerRow() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-*s ", scorer.MaxNameLength, "Player")
	for i := 1; i <= bowling.NumberOfFrames; i++ {
		b.WriteString(separator)
		b.WriteString(center(fmt.Sprint(i), cellWidth(i-1)))
	}
	b.WriteString(separator)
	fmt.Fprintf(&b, "%*s", totalCellWidth, "Total")
	return b.String()
}

// frameRows renders the marks and running totals for a player's frames
func frameRows(frames []bowling.FrameSnapshot) (string, string) {
	var marks, totals strings.Builder
	running := 0
	for i, f := range frames {
		width := cellWidth(i)

		marks.WriteString(separator)
		marks.WriteString(fmt.Sprintf("%-*s", width, strings.TrimRight(strings.Join(f.Marks(), " "), " ")))

		totals.WriteString(separator)
		if f.Started() {
			running += f.Total
			totals.WriteString(fmt.Sprintf("%*d", width, running))
		} else {
			totals.WriteString(strings.Repeat(" ", width))
		}
	}
	marks.WriteString(separator)
	totals.WriteString(separator)
	return marks.String(), totals.String()
}

func cellWidth(index int) int {
	if index == bowling.NumberOfFrames-1 {
		return lastCellWidth
	}
	return regularCellWidth
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
