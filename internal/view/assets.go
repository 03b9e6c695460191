package view

import (
	"embed"
	"io/fs"
)

//go:embed assets
var assets embed.FS

// Assets is the stylesheet and script served under /static.
func Assets() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
