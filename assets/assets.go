// Package assets embeds the site that every provisioning run replicates.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed site
var files embed.FS

// Site returns the embedded site rooted at its top directory, so paths look
// like "index.html" or "js/main.js".
func Site() fs.FS {
	site, err := fs.Sub(files, "site")
	if err != nil {
		panic(err) // the directory is part of the binary
	}
	return site
}
