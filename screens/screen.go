// Package screens builds the ebitenui widget trees for the triage
// views: the sorting page, the queue list, and the completion state.
// Screens are rebuilt from scratch whenever the cursor moves or the
// window geometry changes; they hold no navigation state of their own.
package screens

import (
	"github.com/ebitenui/ebitenui/widget"

	"github.com/pictriage/pictriage/swipe"
	"github.com/pictriage/pictriage/texture"
)

// Callback is the surface screens use to reach application behavior.
// The app implements it; screens never mutate the engine directly
// except through these methods.
type Callback interface {
	// Engine returns the navigation engine backing the session.
	Engine() *swipe.Engine

	// Textures returns the resident texture cache.
	Textures() *texture.Cache

	// Outcomes returns the action buttons presented under each image.
	Outcomes() []swipe.Outcome

	// Dispatch performs an outcome against a page slot. The app owns
	// feedback (sound, error toast) around the engine call.
	Dispatch(slot int, outcome swipe.Outcome)

	// ToggleQueue shows or hides the queue list.
	ToggleQueue()

	// Quit requests application shutdown.
	Quit()
}

// Screen is one top-level view. Build produces the widget tree for the
// given content area in physical pixels; Teardown releases any GPU
// resources the screen created.
type Screen interface {
	Build(width, height int) *widget.Container
	Teardown()
}
