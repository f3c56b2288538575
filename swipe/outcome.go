package swipe

import "strings"

// OutcomeKind is the default behavior an action button performs when
// pressed, before any custom callback runs.
type OutcomeKind int

const (
	// OutcomeReject advances past the page without saving anything.
	OutcomeReject OutcomeKind = iota
	// OutcomeAccept saves the targeted item into the outcome's
	// category directory, then advances.
	OutcomeAccept
	// OutcomeHighlight saves the targeted item like accept but marks
	// it as a favorite category.
	OutcomeHighlight
	// OutcomeCustom performs no default behavior; the callback owns
	// the action entirely.
	OutcomeCustom
)

// Outcome describes one action button presented under the image page.
// DirName is the sanitized form of Label used as the output
// subdirectory for saved images.
type Outcome struct {
	Label   string
	Kind    OutcomeKind
	DirName string

	// Callback, if set, runs in addition to the kind's default
	// behavior. It receives the absolute queue index the action
	// targeted.
	Callback func(index int)
}

// NewOutcome creates an outcome with DirName derived from the label.
func NewOutcome(label string, kind OutcomeKind) Outcome {
	return Outcome{Label: label, Kind: kind, DirName: SanitizeDirName(label)}
}

// RejectOutcome returns the standard discard button.
func RejectOutcome(label string) Outcome {
	if label == "" {
		label = "Discard"
	}
	return NewOutcome(label, OutcomeReject)
}

// AcceptOutcome returns the standard keep button.
func AcceptOutcome(label string) Outcome {
	if label == "" {
		label = "Keep"
	}
	return NewOutcome(label, OutcomeAccept)
}

// HighlightOutcome returns the standard favorite button.
func HighlightOutcome(label string) Outcome {
	if label == "" {
		label = "Favorite"
	}
	return NewOutcome(label, OutcomeHighlight)
}

// CustomOutcome returns a button whose behavior is entirely the
// callback's.
func CustomOutcome(label string, callback func(index int)) Outcome {
	o := NewOutcome(label, OutcomeCustom)
	o.Callback = callback
	return o
}

// SanitizeDirName converts an outcome label into a safe directory
// name: path separators and characters reserved on common filesystems
// are replaced with underscores, surrounding whitespace is trimmed.
func SanitizeDirName(label string) string {
	const reserved = `/\:*?"<>|`
	var b strings.Builder
	for _, r := range strings.TrimSpace(label) {
		if strings.ContainsRune(reserved, r) || r < 0x20 {
			b.WriteRune('_')
		} else {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}
