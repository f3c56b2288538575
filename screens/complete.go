package screens

import (
	"fmt"

	"github.com/ebitenui/ebitenui/widget"

	"github.com/pictriage/pictriage/style"
)

// CompleteScreen is shown once the queue is exhausted.
type CompleteScreen struct {
	callback Callback
}

// NewCompleteScreen creates the completion screen.
func NewCompleteScreen(callback Callback) *CompleteScreen {
	return &CompleteScreen{callback: callback}
}

// Build constructs the completion view.
func (s *CompleteScreen) Build(width, height int) *widget.Container {
	total := s.callback.Engine().Registry().Len()

	subtitle := "No images were in the queue."
	if total == 1 {
		subtitle = "1 image processed."
	} else if total > 1 {
		subtitle = fmt.Sprintf("%d images processed.", total)
	}

	quit := style.TextButton("Quit", style.ButtonPaddingMedium,
		func(args *widget.ButtonClickedEventArgs) {
			s.callback.Quit()
		})

	root := style.ScreenContainer()
	root.AddChild(style.EmptyState("All images sorted", subtitle, quit))
	return root
}

// Teardown is a no-op; the completion screen owns no GPU resources.
func (s *CompleteScreen) Teardown() {}
