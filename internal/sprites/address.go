package sprites

import "fmt"

const remoteSpriteBase = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"

// LocalAssetName maps a species key to the on-disk sprite filename:
// each word capitalized, spaces and parentheses preserved, ".png"
// appended. Pure function of the key.
func LocalAssetName(key string) string {
	out := []rune(key)
	upperNext := true
	for i, r := range out {
		switch {
		case r == ' ' || r == '(' || r == '-' || r == '.':
			upperNext = true
		case upperNext && r >= 'a' && r <= 'z':
			out[i] = r - ('a' - 'A')
			upperNext = false
		default:
			upperNext = false
		}
	}
	return string(out) + ".png"
}

// RemoteSpriteURL maps a numeric sprite identifier to its remote asset
// URL. Pure function of the id.
func RemoteSpriteURL(id int) string {
	return fmt.Sprintf("%s/%d.png", remoteSpriteBase, id)
}
