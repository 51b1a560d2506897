// Package frontend ships the single-page certificate form inside the binary.
package frontend

import _ "embed"

// IndexHTML is served at "/".
//
//go:embed index.html
var IndexHTML []byte
