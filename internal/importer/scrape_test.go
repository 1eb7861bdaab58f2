package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const teamListFixture = `<html><body>
<h2>Springfield Regional Championships</h2>
<h3>Speedy Fox [DE]</h3>
<div class="tab-content">
  <div class="tab-pane" id="lang-EN">
    <div class="pokemon"><span class="name">Moltres (Galarian)</span></div>
    <div class="pokemon"><span class="name">Corviknight</span><span class="badge shadow">Shadow</span></div>
    <div class="pokemon"><span class="name">Swampert</span></div>
  </div>
  <div class="tab-pane" id="lang-DE">
    <div class="pokemon"><span class="name">Moltres (Galar)</span></div>
    <div class="pokemon"><span class="name">Krarmor</span></div>
    <div class="pokemon"><span class="name">Sumpex</span></div>
  </div>
</div>
</body></html>`

func TestParseTeamListPage(t *testing.T) {
	res, err := ParseTeamListPage([]byte(teamListFixture))
	require.NoError(t, err)

	assert.Equal(t, "Speedy Fox [DE]", res.PlayerName)
	assert.Equal(t, "Springfield Regional Championships", res.EventName)

	// Only the English pane is read; the German copy must not double the
	// team.
	require.Len(t, res.Pokemon, 3)
	assert.Equal(t, "Moltres (Galarian)", res.Pokemon[0].Name)
	assert.False(t, res.Pokemon[0].IsShadow)
	assert.Equal(t, "Corviknight", res.Pokemon[1].Name)
	assert.True(t, res.Pokemon[1].IsShadow)
}

func TestParseTeamListPageCapsTeamSize(t *testing.T) {
	page := `<html><body><h3>Overfull</h3><div>`
	for i := 0; i < 9; i++ {
		page += `<div class="pokemon"><span class="name">Swampert</span></div>`
	}
	page += `</div></body></html>`

	res, err := ParseTeamListPage([]byte(page))
	require.NoError(t, err)
	assert.Len(t, res.Pokemon, 6)
}

func TestParseTeamListPageNoLocaleSections(t *testing.T) {
	page := `<html><body><h3>Plain</h3>
<div class="pokemon"><span class="name">Machamp</span></div>
</body></html>`

	res, err := ParseTeamListPage([]byte(page))
	require.NoError(t, err)
	require.Len(t, res.Pokemon, 1)
	assert.Equal(t, "Machamp", res.Pokemon[0].Name)
}

func TestParseTeamListPageRejectsEmpty(t *testing.T) {
	_, err := ParseTeamListPage([]byte(`<html><body><p>nothing here</p></body></html>`))
	require.Error(t, err)
}

func TestParseTeamListPageNameOnlyIsAccepted(t *testing.T) {
	res, err := ParseTeamListPage([]byte(`<html><body><h3>Just A Name</h3></body></html>`))
	require.NoError(t, err)
	assert.Equal(t, "Just A Name", res.PlayerName)
	assert.Empty(t, res.Pokemon)
}

const rosterFixture = `<html><body><table class="roster">
<tr><th>First</th><th>Last</th><th>Screen name</th><th>Country</th></tr>
<tr><td>Ada</td><td>Lovelace</td><td>SpeedyFox</td><td>GB</td></tr>
<tr><td>Alan</td><td>Turing</td><td>Kertwang</td><td>GB</td></tr>
<tr><td>short row</td></tr>
</table></body></html>`

func TestParseRosterPage(t *testing.T) {
	rows, err := ParseRosterPage([]byte(rosterFixture))
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, RosterRow{FirstName: "Ada", LastName: "Lovelace", ScreenName: "SpeedyFox", Country: "GB"}, rows[0])
	assert.Equal(t, "Kertwang", rows[1].ScreenName)
}

func TestParseRosterPageEmptyIsFailure(t *testing.T) {
	_, err := ParseRosterPage([]byte(`<html><body><table><tr><th>only headers</th></tr></table></body></html>`))
	require.Error(t, err)
}
