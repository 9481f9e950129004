// Package console handles the terminal window a double-clicked launch runs in.
package console

// Visibility brings a hidden console window back on screen.
type Visibility interface {
	Show() error
}

// Noop is the Visibility for platforms without a hideable console.
type Noop struct{}

func (Noop) Show() error { return nil }
