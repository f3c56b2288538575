package pictriage

import (
	"log"

	"github.com/pictriage/pictriage/source"
	"github.com/pictriage/pictriage/swipe"
)

// Session describes one triage run: the queue, the paging shape, and
// the action buttons presented under each image.
type Session struct {
	Items    []swipe.Item
	PageSize int
	StepSize int

	// outcomes builds the action buttons once the app (and its engine)
	// exists, so callbacks can reach the live registry.
	outcomes func(app *App) []swipe.Outcome

	// onExhaust, when set, runs at queue completion. Returning true
	// means another round was started and the sorting view stays up.
	onExhaust func(app *App) bool
}

// LocalSession triages a directory one image at a time with the
// standard keep/discard/favorite outcomes.
func LocalSession(items []swipe.Item) Session {
	return Session{
		Items:    items,
		PageSize: 1,
		StepSize: 1,
		outcomes: func(app *App) []swipe.Outcome {
			return []swipe.Outcome{
				swipe.RejectOutcome(""),
				swipe.AcceptOutcome(""),
				swipe.HighlightOutcome(""),
			}
		},
	}
}

// MultiSession triages several images per page. Each slot gets its own
// outcome row; dispatching any of them advances past the whole page.
func MultiSession(items []swipe.Item, imagesPer int) Session {
	if imagesPer < 1 {
		imagesPer = 1
	}
	session := LocalSession(items)
	session.PageSize = imagesPer
	session.StepSize = imagesPer
	return session
}

// PickNSession runs elimination rounds until at most keepCount images
// survive: kept images re-enter a shuffled queue each round, and the
// final survivors are copied into the Keep category.
func PickNSession(items []swipe.Item, keepCount int) Session {
	if keepCount < 1 {
		keepCount = 1
	}

	var keptIdx []int
	session := Session{
		Items:    items,
		PageSize: 1,
		StepSize: 1,
	}
	session.outcomes = func(app *App) []swipe.Outcome {
		return []swipe.Outcome{
			swipe.RejectOutcome("Discard"),
			swipe.CustomOutcome("Keep", func(index int) {
				keptIdx = append(keptIdx, index)
			}),
			// Short-circuit: keep everything from here on and end the
			// round.
			swipe.CustomOutcome("Keep Rest", func(index int) {
				for i := index; i < app.engine.Registry().Len(); i++ {
					keptIdx = append(keptIdx, i)
				}
				app.engine.Finish()
			}),
		}
	}
	session.onExhaust = func(app *App) bool {
		reg := app.engine.Registry()
		if len(keptIdx) <= keepCount {
			for _, idx := range keptIdx {
				if err := app.engine.SaveAt(idx, "Keep"); err != nil {
					log.Printf("Failed to save kept image: %v", err)
					app.notification.ShowDefault("Save failed: " + reg.Get(idx).Label)
				}
			}
			return false
		}

		survivors := make([]swipe.Item, 0, len(keptIdx))
		for _, idx := range keptIdx {
			survivors = append(survivors, reg.Get(idx))
		}
		keptIdx = keptIdx[:0]
		source.Shuffle(survivors)

		app.engine.Replace(survivors)
		app.engine.Start()
		return true
	}
	return session
}
