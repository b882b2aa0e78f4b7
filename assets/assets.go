// Package assets embeds the game's static data files.
package assets

import "embed"

// Cards holds the flashcard deck definitions.
//
//go:embed cards/*.yaml
var Cards embed.FS
