package screens

import (
	"fmt"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pictriage/pictriage/style"
	"github.com/pictriage/pictriage/swipe"
	"github.com/pictriage/pictriage/texture"
)

// scaledTexture is a display-sized GPU copy of a cached image. Kept
// between rebuilds while the target size is unchanged so stepping back
// and forth does not rescale every frame.
type scaledTexture struct {
	img  *ebiten.Image
	size texture.Size
}

// SortScreen is the main triage view: the current page of images with
// an action row under each slot.
type SortScreen struct {
	callback Callback
	scaled   map[string]scaledTexture
}

// NewSortScreen creates the sorting screen.
func NewSortScreen(callback Callback) *SortScreen {
	return &SortScreen{
		callback: callback,
		scaled:   make(map[string]scaledTexture),
	}
}

// Build constructs the widget tree for the given content area.
func (s *SortScreen) Build(width, height int) *widget.Container {
	engine := s.callback.Engine()
	slice := engine.Slice()
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
	content.AddChild(s.buildHeader(cursor, total))

	// Every page slot gets a fixed-width column even when the last page
	// runs short, so the layout does not shift at the tail of the queue.
	columns := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(cursor.PageSize),
			widget.GridLayoutOpts.Stretch(equalStretch(cursor.PageSize), []bool{true}),
			widget.GridLayoutOpts.Spacing(style.SmallSpacing, 0),
		)),
	)

	shares := swipe.SplitShares(
		width-2*style.DefaultPadding-(cursor.PageSize-1)*style.SmallSpacing,
		cursor.PageSize,
	)
	imageHeight := height - 2*style.DefaultPadding - style.QueueRowHeight -
		2*style.SmallSpacing - style.ActionBarHeight

	wanted := make(map[string]bool, len(slice))
	for slot := 0; slot < cursor.PageSize; slot++ {
		if slot < len(slice) {
			wanted[slice[slot].Item.ID] = true
			columns.AddChild(s.buildSlot(slot, slice[slot], shares[slot], imageHeight))
		} else {
			columns.AddChild(widget.NewContainer())
		}
	}
	s.dropStale(wanted)

	content.AddChild(columns)
	root.AddChild(content)
	return root
}

func (s *SortScreen) buildHeader(cursor swipe.Cursor, total int) *widget.Container {
	header := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Stretch([]bool{true, false}, []bool{false}),
			widget.GridLayoutOpts.Spacing(style.SmallSpacing, 0),
		)),
	)

	header.AddChild(widget.NewText(
		widget.TextOpts.Text(pageTitle(cursor, total), style.FontFace(), style.Text),
		widget.TextOpts.Position(widget.TextPositionStart, widget.TextPositionCenter),
	))
	header.AddChild(style.TextButton("Queue", style.ButtonPaddingSmall,
		func(args *widget.ButtonClickedEventArgs) {
			s.callback.ToggleQueue()
		}))
	return header
}

// buildSlot creates one image column: the best-fit image, the source
// label, and the outcome buttons targeting this slot.
func (s *SortScreen) buildSlot(slot int, pageSlot swipe.Slot, shareWidth, shareHeight int) *widget.Container {
	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(1),
			widget.GridLayoutOpts.Stretch([]bool{true}, []bool{true, false, false}),
			widget.GridLayoutOpts.Spacing(0, style.TinySpacing),
		)),
	)

	column.AddChild(s.buildImage(pageSlot, shareWidth, shareHeight))

	label, _ := style.TruncateStart(pageSlot.Item.Label, 40)
	column.AddChild(widget.NewText(
		widget.TextOpts.Text(label, style.FontFace(), style.TextSecondary),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
	))

	column.AddChild(s.buildActions(slot))
	return column
}

func (s *SortScreen) buildImage(pageSlot swipe.Slot, shareWidth, shareHeight int) *widget.Container {
	frame := texture.Size{
		W: shareWidth - 2*style.ImagePadding,
		H: shareHeight - 2*style.ImagePadding,
	}
	if frame.W < 1 {
		frame.W = 1
	}
	if frame.H < 1 {
		frame.H = 1
	}

	holder := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.Surface)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(style.ImagePadding)),
		)),
	)

	img := s.scaledFor(pageSlot.Item.ID, frame)
	if img != nil {
		holder.AddChild(widget.NewGraphic(
			widget.GraphicOpts.Image(img),
			widget.GraphicOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
					HorizontalPosition: widget.AnchorLayoutPositionCenter,
					VerticalPosition:   widget.AnchorLayoutPositionCenter,
				}),
			),
		))
	}
	return holder
}

func (s *SortScreen) buildActions(slot int) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(style.SmallSpacing),
		)),
	)
	for _, outcome := range s.callback.Outcomes() {
		outcome := outcome
		handler := func(args *widget.ButtonClickedEventArgs) {
			s.callback.Dispatch(slot, outcome)
		}
		var btn *widget.Button
		switch outcome.Kind {
		case swipe.OutcomeReject:
			btn = style.DangerTextButton(outcome.Label, style.ButtonPaddingMedium, handler)
		case swipe.OutcomeAccept, swipe.OutcomeHighlight:
			btn = style.PrimaryTextButton(outcome.Label, style.ButtonPaddingMedium, handler)
		default:
			btn = style.TextButton(outcome.Label, style.ButtonPaddingMedium, handler)
		}
		row.AddChild(btn)
	}
	return row
}

// scaledFor returns the display-sized texture for id, rescaling from
// the cached pixels only when the best-fit size changed since the last
// build. Returns nil when the id is not resident (the scheduler has
// not loaded it yet).
func (s *SortScreen) scaledFor(id string, frame texture.Size) *ebiten.Image {
	cache := s.callback.Textures()
	pixels := cache.Pixels(id)
	if pixels == nil {
		return nil
	}

	target, _ := texture.BestFit(cache.DimensionsOf(id), frame, true)
	if target.W < 1 {
		target.W = 1
	}
	if target.H < 1 {
		target.H = 1
	}

	if entry, ok := s.scaled[id]; ok {
		if entry.size == target {
			return entry.img
		}
		entry.img.Deallocate()
	}

	img := style.ScaleImage(pixels, target.W, target.H)
	s.scaled[id] = scaledTexture{img: img, size: target}
	return img
}

// dropStale releases display textures for ids no longer on the page.
func (s *SortScreen) dropStale(wanted map[string]bool) {
	for id, entry := range s.scaled {
		if !wanted[id] {
			entry.img.Deallocate()
			delete(s.scaled, id)
		}
	}
}

// Teardown releases all display textures.
func (s *SortScreen) Teardown() {
	s.dropStale(nil)
}

func pageTitle(cursor swipe.Cursor, total int) string {
	first := cursor.Position + 1
	last := cursor.Position + cursor.PageSize
	if last > total {
		last = total
	}
	if cursor.PageSize == 1 || first == last {
		return fmt.Sprintf("Image %d of %d", first, total)
	}
	return fmt.Sprintf("Images %d-%d of %d", first, last, total)
}

func equalStretch(n int) []bool {
	stretch := make([]bool, n)
	for i := range stretch {
		stretch[i] = true
	}
	return stretch
}
