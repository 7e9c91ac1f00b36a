package api

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/mattdh/lic-cli/internal/domain"
)

// encodeQuery assembles the query string for /api/query/{period}. The wire
// contract fixes the parameter order from,to,user,mode,status,limit, which
// rules out url.Values.Encode and its alphabetical sort. Absent optionals
// are skipped entirely; mode is always emitted.
func encodeQuery(filter domain.QueryFilter) string {
	mode := filter.Mode
	if mode == "" {
		mode = domain.DefaultMode
	}

	pairs := make([]string, 0, 6)
	add := func(key, value string) {
		if value == "" {
			return
		}
		pairs = append(pairs, key+"="+url.QueryEscape(value))
	}

	add("from", filter.From)
	add("to", filter.To)
	add("user", filter.User)
	add("mode", mode)
	add("status", string(filter.Status))
	if filter.Limit > 0 {
		add("limit", strconv.Itoa(filter.Limit))
	}

	return strings.Join(pairs, "&")
}
