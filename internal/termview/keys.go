package termview

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/cursed-particles/internal/pose"
	"github.com/iburimskiy/cursed-particles/internal/technique"
)

var gestureRunes = map[rune]technique.Technique{
	'0': technique.Neutral,
	'1': technique.Red,
	'2': technique.Void,
	'3': technique.Purple,
	'4': technique.Shrine,
}

// KeySource is a pose source fed by terminal key presses. Hold may be called
// from the event goroutine; Next runs on the driver goroutine.
type KeySource struct {
	synth *pose.Synth
	holds chan technique.Technique
}

func NewKeySource(fps float64) *KeySource {
	return &KeySource{synth: pose.NewSynth(fps), holds: make(chan technique.Technique, 8)}
}

func (k *KeySource) Hold(t technique.Technique) {
	select {
	case k.holds <- t:
	default:
	}
}

func (k *KeySource) Next(dt time.Duration) (pose.Sample, bool) {
drain:
	for {
		select {
		case t := <-k.holds:
			k.synth.Hold(t)
		default:
			break drain
		}
	}
	return k.synth.Next(dt)
}

// HandleKey maps a key event to a gesture. quit is true for Esc, q and Ctrl-C.
func (k *KeySource) HandleKey(ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		if ev.Rune() == 'q' || ev.Rune() == 'Q' {
			return true
		}
		if t, ok := gestureRunes[ev.Rune()]; ok {
			k.Hold(t)
		}
	}
	return false
}
