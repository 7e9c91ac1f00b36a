package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"day", "week", "month"} {
		period, err := ParsePeriod(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, string(period))
	}

	_, err := ParsePeriod("year")
	require.ErrorIs(t, err, ErrValidation)
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	for _, raw := range StatusValues() {
		status, err := ParseStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, string(status))
	}

	_, err := ParseStatus("wfh")
	require.ErrorIs(t, err, ErrValidation)
}

func TestStatusIsAbsence(t *testing.T) {
	t.Parallel()

	assert.True(t, StatusSick.IsAbsence())
	assert.True(t, StatusLeave.IsAbsence())
	assert.False(t, StatusInOffice.IsAbsence())
	assert.False(t, StatusRemote.IsAbsence())
}

func TestAttendanceEntryValidate(t *testing.T) {
	t.Parallel()

	valid := AttendanceEntry{Date: "2024-01-01", Time: "09:15", Name: "alice", Status: StatusInOffice}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		entry AttendanceEntry
	}{
		{"empty name", AttendanceEntry{Date: "2024-01-01", Time: "09:15", Status: StatusRemote}},
		{"unknown status", AttendanceEntry{Date: "2024-01-01", Time: "09:15", Name: "alice", Status: "parental"}},
		{"bad date", AttendanceEntry{Date: "01.01.2024", Time: "09:15", Name: "alice", Status: StatusRemote}},
		{"bad time", AttendanceEntry{Date: "2024-01-01", Time: "9am", Name: "alice", Status: StatusRemote}},
		{"sick with arrival time", AttendanceEntry{Date: "2024-01-01", Time: "09:15", Name: "alice", Status: StatusSick}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, tc.entry.Validate(), ErrValidation)
		})
	}

	absence := AttendanceEntry{Date: "2024-01-01", Time: AbsenceTime, Name: "alice", Status: StatusLeave}
	require.NoError(t, absence.Validate())
}

func TestSessionWithLogin(t *testing.T) {
	t.Parallel()

	before := DefaultSession()
	after := before.WithLogin("alice", "tok")

	assert.False(t, before.Authenticated(), "WithLogin must not mutate the receiver")
	assert.True(t, after.Authenticated())
	assert.Equal(t, "alice", after.Username)
	assert.Equal(t, before.APIURL, after.APIURL)
}

func TestQueryFilterValidate(t *testing.T) {
	t.Parallel()

	valid := QueryFilter{Period: PeriodDay, From: "2024-01-01", Mode: "last-in"}
	require.NoError(t, valid.Validate())

	assert.ErrorIs(t, QueryFilter{Period: "quarter"}.Validate(), ErrValidation)
	assert.ErrorIs(t, QueryFilter{Period: PeriodDay, To: "tomorrow"}.Validate(), ErrValidation)
	assert.ErrorIs(t, QueryFilter{Period: PeriodDay, Status: "wfh"}.Validate(), ErrValidation)
	assert.ErrorIs(t, QueryFilter{Period: PeriodDay, Limit: -1}.Validate(), ErrValidation)
}

func TestWireTypesRoundTrip(t *testing.T) {
	t.Parallel()

	streak := 3
	start := "2024-01-02"

	ranking := Ranking{
		Name:               "alice",
		Score:              9.5,
		Streak:             &streak,
		AverageArrivalTime: "08:55",
		Stats:              RankingStats{InOffice: 5, Remote: 1, Leave: 1, Days: 7},
	}
	data, err := json.Marshal(ranking)
	require.NoError(t, err)
	var gotRanking Ranking
	require.NoError(t, json.Unmarshal(data, &gotRanking))
	assert.Equal(t, ranking, gotRanking)

	run := Streak{Username: "alice", CurrentStreak: 4, MaxStreak: 9, StreakStart: &start}
	data, err = json.Marshal(run)
	require.NoError(t, err)
	var gotRun Streak
	require.NoError(t, json.Unmarshal(data, &gotRun))
	assert.Equal(t, run, gotRun)

	result := QueryResult{Date: "2024-01-01", Name: "alice", Status: "remote", Time: "09:15", Score: 7.25}
	data, err = json.Marshal(result)
	require.NoError(t, err)
	var gotResult QueryResult
	require.NoError(t, json.Unmarshal(data, &gotResult))
	assert.Equal(t, result, gotResult)
}
