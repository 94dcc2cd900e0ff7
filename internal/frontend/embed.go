package frontend

import (
	"embed"
	"io/fs"
)

//go:embed static templates
var assets embed.FS

// StaticFS returns the embedded stylesheet and script
func StaticFS() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		// the directory is embedded at build time
		panic(err)
	}
	return sub
}
