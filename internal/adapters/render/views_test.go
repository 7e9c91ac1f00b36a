package render

import (
	"testing"

	"github.com/mattdh/lic-cli/internal/domain"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestRankingsShowsRankOrderAndStreaks(t *testing.T) {
	t.Parallel()

	out := Rankings([]domain.Ranking{
		{
			Name:               "alice",
			Score:              9.5,
			Streak:             intPtr(3),
			AverageArrivalTime: "08:55",
			Stats:              domain.RankingStats{InOffice: 5, Days: 5},
		},
		{
			Name:               "bob",
			Score:              7.25,
			AverageArrivalTime: "09:30",
			Stats:              domain.RankingStats{Remote: 4, Days: 4},
		},
	}, domain.PeriodDay, "2024-01-01")

	assert.Contains(t, out, "DAY Rankings (2024-01-01)")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "9.50")
	assert.Contains(t, out, "🔥 3")
	assert.Contains(t, out, "bob")
	assert.Contains(t, out, "—", "missing streak renders as a dash")
}

func TestStreaksRendersSinceDateOrDash(t *testing.T) {
	t.Parallel()

	start := "2024-01-02"
	out := Streaks([]domain.Streak{
		{Username: "alice", CurrentStreak: 4, MaxStreak: 9, StreakStart: &start},
		{Username: "bob", CurrentStreak: 0, MaxStreak: 2},
	})

	assert.Contains(t, out, "Attendance Streaks")
	assert.Contains(t, out, "🔥 4")
	assert.Contains(t, out, "2024-01-02")
	assert.Contains(t, out, "—")
}

func TestStatsShowsSharesAndHandlesZeroDays(t *testing.T) {
	t.Parallel()

	out := Stats("alice", domain.StatsResponse{
		AverageArrivalTime: "09:12",
		Score:              42.5,
		Stats:              domain.RankingStats{Days: 20, InOffice: 12, Remote: 6, Sick: 1, Leave: 1},
	})

	assert.Contains(t, out, "Statistics for alice")
	assert.Contains(t, out, "12 (60%)")
	assert.Contains(t, out, "6 (30%)")
	assert.Contains(t, out, "42.50")

	empty := Stats("bob", domain.StatsResponse{})
	assert.Contains(t, empty, "Statistics for bob")
	assert.NotContains(t, empty, "%)", "no shares without any tracked days")
}

func TestQueryResultsRendersRows(t *testing.T) {
	t.Parallel()

	out := QueryResults([]domain.QueryResult{
		{Date: "2024-01-01", Name: "alice", Status: "in-office", Time: "08:55", Score: 9.5, Streak: intPtr(3)},
	})

	assert.Contains(t, out, "Query Results")
	assert.Contains(t, out, "2024-01-01")
	assert.Contains(t, out, "in-office")
	assert.Contains(t, out, "9.50")
}
