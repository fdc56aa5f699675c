package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/connectn/internal/storage"
)

// newTable builds an unfocused table sized to show every row.
func newTable(columns []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2), // header and its border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selected in a static listing.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// ResultsTable renders recent games, newest first.
func ResultsTable(results []storage.Result) string {
	if len(results) == 0 {
		return "No games recorded yet."
	}

	columns := []table.Column{
		{Title: "Date", Width: 14},
		{Title: "Board", Width: 7},
		{Title: "Win", Width: 4},
		{Title: "Players", Width: 30},
		{Title: "Result", Width: 22},
		{Title: "Moves", Width: 6},
		{Title: "Via", Width: 6},
	}

	rows := make([]table.Row, len(results))
	for i, r := range results {
		names := make([]string, len(r.Participants))
		for j, p := range r.Participants {
			names[j] = fmt.Sprintf("%s (%s)", p.Name, p.Color)
		}
		outcome := "Tie"
		if !r.Tie() {
			outcome = fmt.Sprintf("%s: %s", r.WinnerColor, strings.Join(r.WinnerNames(), ", "))
		}
		rows[i] = table.Row{
			r.CreatedAt.Local().Format("Jan 02 15:04"),
			fmt.Sprintf("%dx%d", r.Rows, r.Columns),
			fmt.Sprintf("%d", r.AmountToWin),
			strings.Join(names, ", "),
			outcome,
			fmt.Sprintf("%d", r.Moves),
			r.Source,
		}
	}

	return newTable(columns, rows).View()
}

// StandingsTable renders per-player records.
func StandingsTable(standings []storage.Standing) string {
	if len(standings) == 0 {
		return "No players yet."
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 20},
		{Title: "Played", Width: 8},
		{Title: "Wins", Width: 6},
		{Title: "Rate", Width: 7},
	}

	rows := make([]table.Row, len(standings))
	for i, s := range standings {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Name,
			fmt.Sprintf("%d", s.Played),
			fmt.Sprintf("%d", s.Wins),
			fmt.Sprintf("%.0f%%", s.WinRate()*100),
		}
	}

	return newTable(columns, rows).View()
}

// SummaryLine describes totals in one line, colors in a stable order.
func SummaryLine(s storage.Summary) string {
	if s.Games == 0 {
		return "0 games"
	}

	colors := make([]string, 0, len(s.WinsByColor))
	for c := range s.WinsByColor {
		colors = append(colors, c)
	}
	sort.Strings(colors)

	parts := []string{fmt.Sprintf("%d games", s.Games), fmt.Sprintf("%d ties", s.Ties)}
	for _, c := range colors {
		parts = append(parts, fmt.Sprintf("%s %d", c, s.WinsByColor[c]))
	}
	return strings.Join(parts, ", ")
}
