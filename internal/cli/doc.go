// Package cli defines the Cobra command tree for the cplate CLI. The root
// command scaffolds the target directory; each other file registers one
// subcommand (version, config, doctor). Command implementations delegate to
// internal packages for business logic and only handle flag parsing, I/O
// wiring, and user interaction.
package cli
