// internal/version/version.go
package version

// Version is set at build time with -ldflags "-X patmatch/internal/version.Version=...".
var Version = "dev"
