// Package ui provides rendering functions for the rngit terminal UI.
//
// Document composes the dashboard text from a snapshot; Render lays that
// text into the full terminal region. Both are pure (no side effects) and
// separated from state management.
package ui
