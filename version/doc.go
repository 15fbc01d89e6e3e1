// Package version reports the dirsize build version.
//
// Version, Commit and Date can be injected at build time:
//
//	-ldflags "-X github.com/dendrascience/dirsize/version.Version=v1.0.0 -X github.com/dendrascience/dirsize/version.Commit=abc123"
//
// When they are left at their defaults, the module version and VCS settings
// recorded by the Go toolchain in the binary are used instead.
package version
