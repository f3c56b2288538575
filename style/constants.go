package style

// Base constants (unexported) are the logical-pixel reference values.
// The exported vars are recalculated by SetDPIScale.
const (
	baseDefaultPadding      = 16
	baseSmallSpacing        = 8
	baseTinySpacing         = 4
	baseButtonPaddingSmall  = 8
	baseButtonPaddingMedium = 12
	baseActionBarHeight     = 64
	baseImagePadding        = 10
	baseQueueRowHeight      = 28
)

// Layout vars used across screens, DPI-scaled at runtime.
var (
	DefaultPadding      = baseDefaultPadding
	SmallSpacing        = baseSmallSpacing
	TinySpacing         = baseTinySpacing
	ButtonPaddingSmall  = baseButtonPaddingSmall
	ButtonPaddingMedium = baseButtonPaddingMedium

	// ActionBarHeight is the height of the outcome button row.
	ActionBarHeight = baseActionBarHeight
	// ImagePadding is subtracted from each image slot before best-fit.
	ImagePadding = baseImagePadding
	// QueueRowHeight is the row height in the queue overlay list.
	QueueRowHeight = baseQueueRowHeight
)
