// Package prompt runs a form schema as an interactive terminal session. A
// Driver abstracts the concrete prompts (the default one is backed by
// survey), and a Session loops submission attempts through validation,
// re-asking only the fields that failed.
package prompt
