package hud

import (
	"time"

	"github.com/samdwyer/sotora/internal/timer"
)

const (
	// BorderFrames is the number of frames in the border open/close animation.
	BorderFrames = 10

	// FrameDuration is how long each border frame is shown.
	FrameDuration = 100 * time.Millisecond
)

// animation is one open or close run over the border frames.
type animation struct {
	opening bool
	frame   int
	timer   *timer.Timer
}

func newOpening() *animation {
	return &animation{
		opening: true,
		frame:   0,
		timer:   timer.New(FrameDuration, timer.Repeating),
	}
}

func newClosing() *animation {
	return &animation{
		opening: false,
		frame:   BorderFrames - 1,
		timer:   timer.New(FrameDuration, timer.Repeating),
	}
}

// tick advances the animation and reports whether it is still running.
// The frame index only moves toward the terminal frame of its direction.
func (a *animation) tick(dt time.Duration) bool {
	a.timer.Tick(dt)
	if !a.timer.JustFinished() {
		return true
	}

	if a.opening {
		if a.frame >= BorderFrames-1 {
			return false
		}
		a.frame++
		return true
	}

	if a.frame == 0 {
		return false
	}
	a.frame--
	return true
}
