package api

import (
	"testing"

	"github.com/mattdh/lic-cli/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEncodeQueryFixedOrderAndOmission(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter domain.QueryFilter
		want   string
	}{
		{
			name:   "mode only when everything else is absent",
			filter: domain.QueryFilter{Period: domain.PeriodDay},
			want:   "mode=last-in",
		},
		{
			name:   "from without to",
			filter: domain.QueryFilter{Period: domain.PeriodDay, From: "2024-01-01", Mode: "last-in"},
			want:   "from=2024-01-01&mode=last-in",
		},
		{
			name: "all params keep the wire order",
			filter: domain.QueryFilter{
				Period: domain.PeriodWeek,
				From:   "2024-01-01",
				To:     "2024-02-01",
				User:   "alice",
				Mode:   "early-bird",
				Status: domain.StatusRemote,
				Limit:  10,
			},
			want: "from=2024-01-01&to=2024-02-01&user=alice&mode=early-bird&status=remote&limit=10",
		},
		{
			name:   "user value is escaped",
			filter: domain.QueryFilter{Period: domain.PeriodDay, User: "a b", Mode: "last-in"},
			want:   "user=a+b&mode=last-in",
		},
		{
			name:   "zero limit is omitted",
			filter: domain.QueryFilter{Period: domain.PeriodDay, Mode: "last-in", Limit: 0},
			want:   "mode=last-in",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, encodeQuery(tc.filter))
		})
	}
}
