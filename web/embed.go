// Package web holds the site's embedded templates and static assets.
// Generated PDFs are deliberately not embedded; they are written at deploy
// time and served from the configured static directory.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS

//go:embed static/css static/img
var Static embed.FS
