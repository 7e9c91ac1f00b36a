package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattdh/lic-cli/internal/domain"
)

const emptyCell = "—"

// Rankings renders the leaderboard in server order, one rank per row.
func Rankings(rankings []domain.Ranking, period domain.Period, date string) string {
	rows := make([][]string, 0, len(rankings))
	for i, rank := range rankings {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			rank.Name,
			fmt.Sprintf("%.2f", rank.Score),
			streakCell(rank.Streak),
			rank.AverageArrivalTime,
			fmt.Sprintf("🏢 %d | 🏠 %d | 🤒 %d | ✈️ %d",
				rank.Stats.InOffice, rank.Stats.Remote, rank.Stats.Sick, rank.Stats.Leave),
		})
	}

	title := fmt.Sprintf("%s Rankings (%s)", strings.ToUpper(string(period)), date)
	return section(title, renderTable(
		[]string{"Rank", "Name", "Score", "Streak", "Avg. Time", "Stats"},
		rows,
	))
}

func Streaks(streaks []domain.Streak) string {
	rows := make([][]string, 0, len(streaks))
	for _, streak := range streaks {
		current := emptyCell
		if streak.CurrentStreak > 0 {
			current = fmt.Sprintf("🔥 %d", streak.CurrentStreak)
		}
		since := emptyCell
		if streak.StreakStart != nil {
			since = *streak.StreakStart
		}
		rows = append(rows, []string{
			streak.Username,
			current,
			fmt.Sprintf("%d", streak.MaxStreak),
			since,
		})
	}

	return section("Attendance Streaks", renderTable(
		[]string{"Name", "Current Streak", "Best Streak", "Since"},
		rows,
	))
}

func Stats(username string, stats domain.StatsResponse) string {
	rows := [][]string{
		{"Total Days", fmt.Sprintf("%d", stats.Stats.Days)},
		{"In Office", countWithShare(stats.Stats.InOffice, stats.Stats.Days)},
		{"Remote", countWithShare(stats.Stats.Remote, stats.Stats.Days)},
		{"Average Arrival", stats.AverageArrivalTime},
		{"Current Score", fmt.Sprintf("%.2f", stats.Score)},
	}

	return section(fmt.Sprintf("Statistics for %s", username), renderTable(
		[]string{"Metric", "Value"},
		rows,
	))
}

func QueryResults(results []domain.QueryResult) string {
	rows := make([][]string, 0, len(results))
	for _, result := range results {
		rows = append(rows, []string{
			result.Date,
			result.Name,
			result.Status,
			result.Time,
			fmt.Sprintf("%.2f", result.Score),
			streakCell(result.Streak),
		})
	}

	return section("Query Results", renderTable(
		[]string{"Date", "Name", "Status", "Time", "Score", "Streak"},
		rows,
	))
}

func section(title, table string) string {
	return lipgloss.JoinVertical(lipgloss.Left, styleTitle.Render(title), table)
}

func streakCell(streak *int) string {
	if streak == nil || *streak <= 0 {
		return emptyCell
	}
	return fmt.Sprintf("🔥 %d", *streak)
}

func countWithShare(count, days int) string {
	if days <= 0 {
		return fmt.Sprintf("%d", count)
	}
	return fmt.Sprintf("%d (%.0f%%)", count, float64(count)/float64(days)*100)
}
