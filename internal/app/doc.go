// Package app provides the main Bubble Tea application model for rngit.
//
// Model owns all dashboard state and is only touched from the Bubble Tea
// event loop. Key presses and periodic ticks arrive as messages; the model
// re-queries the repository only when a refresh is pending (once at start
// and after each refresh key press) and renders the last snapshot on every
// message.
package app
