package tracking

import "github.com/rs/zerolog"

// zlog is the package logger; it discards output until SetLogger is called.
var zlog = zerolog.Nop()

// SetLogger installs a structured logger used for dispatch diagnostics.
func SetLogger(l zerolog.Logger) { zlog = l }
