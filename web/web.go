// Package web embeds the single-page client and serves it from the API
// binary, so a deployment is one process with no separate static host.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var content embed.FS

// Handler serves the embedded client. Unknown paths fall back to the file
// server's 404; the client itself is a single page at /.
func Handler() http.Handler {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		// embed guarantees the directory exists
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
