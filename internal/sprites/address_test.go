package sprites

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalAssetName(t *testing.T) {
	cases := []struct{ key, want string }{
		{"swampert", "Swampert.png"},
		{"moltres (galarian)", "Moltres (Galarian).png"},
		{"mr. mime", "Mr. Mime.png"},
		{"ho-oh", "Ho-Oh.png"},
		{"tapu fini", "Tapu Fini.png"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LocalAssetName(tc.key))
	}
}

func TestRemoteSpriteURL(t *testing.T) {
	assert.Equal(t,
		"https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/10229.png",
		RemoteSpriteURL(10229))
}
