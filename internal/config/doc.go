// Package config manages user-level settings stored at ~/.cplate/config.yaml.
// Settings can also come from CPLATE_* environment variables and from flags
// bound by the CLI. The settings document is checked against an embedded
// JSON Schema before it is written and before a scaffold run uses it.
package config
