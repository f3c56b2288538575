package pictriage

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/pictriage/pictriage/swipe"
)

// digitKeys maps number keys to outcome indices for single-image
// pages.
var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

func (a *App) initClipboard() {
	if err := clipboard.Init(); err != nil {
		log.Printf("Warning: clipboard not available: %v", err)
		return
	}
	a.clipboardReady = true
}

// handleHotkeys polls keyboard shortcuts once per update.
func (a *App) handleHotkeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		a.Quit()
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		a.ToggleQueue()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && a.state == StateQueue {
		a.ToggleQueue()
		return
	}

	if a.state != StateSorting || a.engine.State() != swipe.StateActive {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		a.engine.Retreat()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		// Skip the page without saving anything.
		a.engine.Advance()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.copyCurrentPath()
		return
	}

	// Number keys: on a single-image page a digit picks the outcome;
	// on multi-image pages digit k keeps slot k.
	if a.engine.Cursor().PageSize == 1 {
		for i, key := range digitKeys {
			if i >= len(a.outcomes) {
				break
			}
			if inpututil.IsKeyJustPressed(key) {
				a.Dispatch(0, a.outcomes[i])
				return
			}
		}
		return
	}

	accept := a.acceptOutcome()
	if accept == nil {
		return
	}
	visible := len(a.engine.Slice())
	for slot, key := range digitKeys {
		if slot >= visible {
			break
		}
		if inpututil.IsKeyJustPressed(key) {
			a.Dispatch(slot, *accept)
			return
		}
	}
}

// acceptOutcome returns the session's accept-class outcome, nil when
// it has none.
func (a *App) acceptOutcome() *swipe.Outcome {
	for i := range a.outcomes {
		switch a.outcomes[i].Kind {
		case swipe.OutcomeAccept, swipe.OutcomeHighlight:
			return &a.outcomes[i]
		}
	}
	return nil
}

// copyCurrentPath puts the first visible image's source path on the
// system clipboard.
func (a *App) copyCurrentPath() {
	if !a.clipboardReady {
		a.notification.ShowDefault("Clipboard not available")
		return
	}
	slice := a.engine.Slice()
	if len(slice) == 0 {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(slice[0].Item.SourcePath))
	a.notification.ShowDefault("Copied image path")
}
