// Package tui is the interactive title browser.
package tui

type state int

const (
	loadingState state = iota
	errorState
	searchState
	titlesState
	detailState
)
