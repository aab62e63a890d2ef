package constants

// Version is overridden at build time with -ldflags "-X github.com/shuffll/cli/constants.Version=...".
var Version = "source"
