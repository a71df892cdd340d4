package web

import "embed"

//go:embed *.tmpl
var Templates embed.FS
