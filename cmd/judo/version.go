package main

import "fmt"

// Set with -ldflags "-X main.buildVersion=... -X main.buildCommit=...".
var buildVersion = "dev"
var buildCommit = "unknown"

func init() {
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func versionString() string {
	return fmt.Sprintf("judo %s (commit %s)", buildVersion, buildCommit)
}
