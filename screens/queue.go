package screens

import (
	"fmt"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"

	"github.com/pictriage/pictriage/style"
)

// QueueScreen lists every item in the queue with the current page
// highlighted. Toggled over the sorting view.
type QueueScreen struct {
	callback Callback
}

// NewQueueScreen creates the queue list screen.
func NewQueueScreen(callback Callback) *QueueScreen {
	return &QueueScreen{callback: callback}
}

// Build constructs the queue list for the given content area.
func (s *QueueScreen) Build(width, height int) *widget.Container {
	engine := s.callback.Engine()
	cursor := engine.Cursor()
	total := engine.Registry().Len()

	root := style.ScreenContainer()

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(1),
			widget.GridLayoutOpts.Stretch([]bool{true}, []bool{false, true}),
			widget.GridLayoutOpts.Spacing(0, style.SmallSpacing),
		)),
	)
	content.AddChild(s.buildHeader(cursor.Position, total))

	rows := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(style.TinySpacing),
		)),
	)
	for i := 0; i < total; i++ {
		rows.AddChild(s.buildRow(i, cursor.Position, cursor.PageSize))
	}

	_, _, wrapper := style.ScrollableContainer(style.ScrollableOpts{Content: rows})
	content.AddChild(wrapper)

	root.AddChild(content)
	return root
}

func (s *QueueScreen) buildHeader(position, total int) *widget.Container {
	header := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Stretch([]bool{true, false}, []bool{false}),
			widget.GridLayoutOpts.Spacing(style.SmallSpacing, 0),
		)),
	)

	title := "Queue empty"
	if total > 0 && position < total {
		title = fmt.Sprintf("Viewing image %d of %d", position+1, total)
	} else if total > 0 {
		title = fmt.Sprintf("Finished all %d images", total)
	}

	header.AddChild(widget.NewText(
		widget.TextOpts.Text(title, style.FontFace(), style.Text),
		widget.TextOpts.Position(widget.TextPositionStart, widget.TextPositionCenter),
	))
	header.AddChild(style.TextButton("Back", style.ButtonPaddingSmall,
		func(args *widget.ButtonClickedEventArgs) {
			s.callback.ToggleQueue()
		}))
	return header
}

// buildRow creates one list entry. Rows on the current page use the
// accent color so the viewing position is visible at a glance.
func (s *QueueScreen) buildRow(index, position, pageSize int) *widget.Container {
	item := s.callback.Engine().Registry().Get(index)
	current := index >= position && index < position+pageSize

	bg := style.Surface
	fg := style.TextSecondary
	if current {
		fg = style.Accent
	}

	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(bg)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{
				Left: style.SmallSpacing, Right: style.SmallSpacing,
				Top: style.TinySpacing, Bottom: style.TinySpacing,
			}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
			widget.WidgetOpts.MinSize(0, style.QueueRowHeight),
		),
	)

	label, _ := style.TruncateStart(fmt.Sprintf("%d. %s", index+1, item.Label), 70)
	row.AddChild(widget.NewText(
		widget.TextOpts.Text(label, style.FontFace(), fg),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	))
	return row
}

// Teardown is a no-op; the queue screen owns no GPU resources.
func (s *QueueScreen) Teardown() {}
