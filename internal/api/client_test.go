package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTeamListURL(t *testing.T) {
	cases := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid https", "https://rk9.gg/teamlist/public/abc123", false},
		{"valid http", "http://rk9.gg/teamlist/xyz", false},
		{"host case-insensitive", "https://RK9.GG/teamlist/abc", false},
		{"wrong host", "https://example.com/teamlist/abc", true},
		{"wrong prefix", "https://rk9.gg/roster/abc", true},
		{"no scheme", "rk9.gg/teamlist/abc", true},
		{"garbage", "::not a url::", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTeamListURL(tc.url)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRosterURL(t *testing.T) {
	assert.NoError(t, ValidateRosterURL("https://rk9.gg/roster/abc"))
	assert.Error(t, ValidateRosterURL("https://rk9.gg/teamlist/abc"))
}
