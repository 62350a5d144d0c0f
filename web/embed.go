// Package web embeds the diagram viewer served at /_ui/.
package web

import "embed"

// DistFS contains the viewer assets from the dist directory.
//
//go:embed all:dist
var DistFS embed.FS
