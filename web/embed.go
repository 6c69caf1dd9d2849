// Package web holds the HTML templates and browser assets compiled into the
// binary.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates/**/*.html
var Templates embed.FS

//go:embed static/**/*
var static embed.FS

// Static returns the asset tree rooted at static/, ready for http.FS.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// "static" is a valid path, so Sub cannot fail.
		panic(err)
	}
	return sub
}
