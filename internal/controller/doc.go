// Package controller drives one generation form: tier selection, the
// customize dialog, validation, the generate and download pipeline, error
// messages and the bounded retry loop. It is UI-agnostic; the desktop window
// and the CLI both observe it through OnChange.
package controller
