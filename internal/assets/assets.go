// Package assets embeds the starter files that the init command writes
// into a fresh workspace.
package assets

import (
	_ "embed"
)

//go:embed starter/config.yml
var StarterConfig string

//go:embed starter/starter-deck.yml
var StarterDeck string
