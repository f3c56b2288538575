package pictriage

import (
	"bytes"
	"image"
	"log"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/pictriage/pictriage/style"
)

// Notification displays temporary messages in the bottom-right corner.
// Used for save failures and clipboard confirmation.
type Notification struct {
	mu        sync.Mutex
	message   string
	startTime time.Time
	duration  time.Duration

	// Pre-allocated background to avoid per-frame allocations
	bg           *ebiten.Image
	lastBgWidth  int
	lastBgHeight int

	// One-shot player for feedback sounds
	player *oto.Player
}

// NewNotification creates a new notification system.
func NewNotification() *Notification {
	return &Notification{}
}

// PlaySound plays sound data through a one-shot oto player.
// Sound data should be 48kHz stereo S16LE format.
func (n *Notification) PlaySound(soundData []byte) {
	if len(soundData) == 0 {
		return
	}

	ctx, err := ensureOtoContext()
	if err != nil {
		log.Printf("Warning: feedback audio not available: %v", err)
		return
	}

	n.mu.Lock()
	if n.player != nil {
		n.player.Close()
	}
	n.player = ctx.NewPlayer(bytes.NewReader(soundData))
	n.player.Play()
	n.mu.Unlock()
}

// Close cleans up audio resources.
func (n *Notification) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.player != nil {
		n.player.Close()
		n.player = nil
	}
}

// Show displays a notification message.
func (n *Notification) Show(message string, duration time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.message = message
	n.startTime = time.Now()
	n.duration = duration
}

// ShowDefault displays a notification with default 3 second duration.
func (n *Notification) ShowDefault(message string) {
	n.Show(message, 3*time.Second)
}

// Clear removes the current notification.
func (n *Notification) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.message = ""
}

// Draw renders the notification.
func (n *Notification) Draw(screen *ebiten.Image) {
	n.mu.Lock()
	if n.message == "" || time.Since(n.startTime) >= n.duration {
		n.mu.Unlock()
		return
	}
	message := n.message
	n.mu.Unlock()

	bounds := screen.Bounds()
	screenWidth := bounds.Dx()
	screenHeight := bounds.Dy()

	textWidth, textHeight := text.Measure(message, *style.FontFace(), 0)

	padding := style.SmallSpacing
	bgWidth := int(textWidth) + padding*2
	bgHeight := int(textHeight) + padding*2

	margin := style.DefaultPadding
	bgX := screenWidth - bgWidth - margin
	bgY := screenHeight - bgHeight - margin

	if n.bg == nil || n.lastBgWidth < bgWidth || n.lastBgHeight < bgHeight {
		n.bg = ebiten.NewImage(bgWidth, bgHeight)
		n.lastBgWidth = bgWidth
		n.lastBgHeight = bgHeight
	}
	n.bg.Clear()
	bgColor := style.Surface
	bgColor.A = 230
	n.bg.Fill(bgColor)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(bgX), float64(bgY))
	screen.DrawImage(n.bg.SubImage(image.Rect(0, 0, bgWidth, bgHeight)).(*ebiten.Image), opts)

	textOpts := &text.DrawOptions{}
	textOpts.GeoM.Translate(float64(bgX+padding), float64(bgY+padding))
	textOpts.ColorScale.ScaleWithColor(style.Text)
	text.Draw(screen, message, *style.FontFace(), textOpts)
}
