package storage

import "fmt"

// Standing aggregates one player's record across all games.
type Standing struct {
	Name   string
	Played int
	Wins   int
}

// WinRate returns the fraction of games won.
func (s Standing) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Played)
}

// Summary contains totals across all recorded games.
type Summary struct {
	Games       int
	Ties        int
	WinsByColor map[string]int
}

// Standings retrieves player records ordered by wins, then games played.
func (s *Store) Standings(limit int) ([]Standing, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT name, COUNT(DISTINCT result_id), COUNT(DISTINCT CASE WHEN winner THEN result_id END)
		 FROM participants
		 GROUP BY name
		 ORDER BY 3 DESC, 2 DESC, name
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query standings: %w", err)
	}
	defer rows.Close()

	var standings []Standing
	for rows.Next() {
		var st Standing
		if err := rows.Scan(&st.Name, &st.Played, &st.Wins); err != nil {
			return nil, fmt.Errorf("storage: cannot scan standing: %w", err)
		}
		standings = append(standings, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return standings, nil
}

// Summarize counts games, ties and wins per color.
func (s *Store) Summarize() (*Summary, error) {
	rows, err := s.db.Query(
		`SELECT COALESCE(winner_color, ''), COUNT(*)
		 FROM results
		 GROUP BY winner_color`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot summarize results: %w", err)
	}
	defer rows.Close()

	sum := &Summary{WinsByColor: make(map[string]int)}
	for rows.Next() {
		var (
			color string
			count int
		)
		if err := rows.Scan(&color, &count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan summary row: %w", err)
		}
		sum.Games += count
		if color == "" {
			sum.Ties += count
			continue
		}
		sum.WinsByColor[color] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sum, nil
}
