package main

import "fmt"

// Set at build time with -ldflags "-X main.version=...".
var (
	version = "0.1.0"
	commit  = "none"
	date    = "unknown"
)

func versionTemplate() string {
	return fmt.Sprintf("infotrash {{.Version}}\n  commit: %s\n  built: %s\n", commit, date)
}
