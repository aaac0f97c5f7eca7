// Package hud implements the area label banner that pops up at the top of
// the screen when the player enters a new area of the world.
package hud

import (
	"strings"
	"time"

	"github.com/samdwyer/sotora/internal/timer"
)

// DisplayDuration is how long a title stays up before the close animation.
const DisplayDuration = 2500 * time.Millisecond

// Visibility is the explicit display state of the area label.
type Visibility int

const (
	// Hidden means the border is fully closed and the text invisible.
	Hidden Visibility = iota
	// Opening means the border is animating toward the last frame.
	Opening
	// Shown means the opening run finished and the label is fully visible.
	Shown
	// Closing means the border is animating back to the first frame.
	Closing
)

// String returns a human-readable visibility name.
func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Opening:
		return "opening"
	case Shown:
		return "shown"
	case Closing:
		return "closing"
	default:
		return "unknown"
	}
}

// AreaLabel displays a temporary area title. It lives for the whole program
// run and is advanced once per frame regardless of the application state.
type AreaLabel struct {
	pending    string
	hasPending bool
	text       string

	visibility Visibility
	frame      int
	anim       *animation
	hideTimer  *timer.Timer
}

// NewAreaLabel creates an empty, hidden label.
func NewAreaLabel() *AreaLabel {
	return &AreaLabel{}
}

// ShowAreaTitle schedules a new title. Any running animation or hide
// countdown is discarded and restarted.
func (l *AreaLabel) ShowAreaTitle(label string) {
	l.pending = strings.ToUpper(label)
	l.hasPending = true
	l.anim = newOpening()
	l.frame = l.anim.frame
	l.visibility = Opening
	l.hideTimer = timer.New(DisplayDuration, timer.Once)
}

// TakePendingText returns the text scheduled by the last ShowAreaTitle call
// and clears it. The second return is false when nothing is pending.
func (l *AreaLabel) TakePendingText() (string, bool) {
	if !l.hasPending {
		return "", false
	}
	text := l.pending
	l.pending = ""
	l.hasPending = false
	l.text = text
	return text, true
}

// Update advances the label by dt.
func (l *AreaLabel) Update(dt time.Duration) {
	// Pending text becomes the displayed text at the start of the frame.
	l.TakePendingText()

	if l.anim != nil {
		running := l.anim.tick(dt)
		l.frame = l.anim.frame
		if !running {
			if l.anim.opening {
				l.visibility = Shown
				l.frame = BorderFrames - 1
			} else {
				l.visibility = Hidden
				l.frame = 0
			}
			l.anim = nil
		}
	}

	if l.hideTimer != nil {
		l.hideTimer.Tick(dt)
		if l.hideTimer.JustFinished() {
			l.anim = newClosing()
			l.frame = l.anim.frame
			l.visibility = Closing
			l.hideTimer = nil
		}
	}
}

// Frame returns the border frame index to display, 0..BorderFrames-1.
func (l *AreaLabel) Frame() int {
	return l.frame
}

// Opacity returns the text opacity in [0, 1].
func (l *AreaLabel) Opacity() float64 {
	switch l.visibility {
	case Opening, Closing:
		return float64(l.frame) / float64(BorderFrames)
	case Shown:
		return 1
	default:
		return 0
	}
}

// Text returns the most recently displayed title.
func (l *AreaLabel) Text() string {
	return l.text
}

// Visibility returns the current display state.
func (l *AreaLabel) Visibility() Visibility {
	return l.visibility
}

// Animating reports whether an open or close run is in progress.
func (l *AreaLabel) Animating() bool {
	return l.anim != nil
}

// HideScheduled reports whether the hide countdown is still running.
func (l *AreaLabel) HideScheduled() bool {
	return l.hideTimer != nil
}
