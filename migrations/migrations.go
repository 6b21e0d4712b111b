// Package migrations embeds the goose SQL migrations so the server and the
// test helpers apply the same schema without relying on a working directory.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
