// Package ui owns the interactive surface: the Bubble Tea model, the action
// router, the pickers, and the modal dialogs. All state transitions flow
// through the router as values from internal/action; views and dialogs never
// call collaborators directly, they emit the action that names the effect and
// the router executes it.
package ui
