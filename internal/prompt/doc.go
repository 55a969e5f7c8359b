// Package prompt implements the interactive yes/no confirmation shown before
// cplate creates a file. Answers are read one line at a time from an injected
// reader so tests and pipelines can feed canned responses.
package prompt
