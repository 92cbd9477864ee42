// Package ui implements the gamehub screens with Bubble Tea.
//
// Core abstractions:
//   - View: A screen or major UI region with its own model, update, view (Elm-style)
//   - Toast: transient auto-dismissing status message with staged timers
//   - ConfirmExitModal: overlay dialog guarding navigation away from a game
//   - HomeButton: navigation gate that owns the confirm modal
//   - GameCard: pure renderer for one hub tile
//   - HubView / GameScreen: the two top-level screens switched by route
package ui
