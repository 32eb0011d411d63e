// Package ui asks the user for confirmation before linkgen touches the
// filesystem.
//
// HuhConfirmer draws a huh confirm form and is used on terminals.
// LineConfirmer reads a y/N answer from any reader. StaticConfirmer
// answers without asking. Aborting a prompt counts as declining.
package ui
