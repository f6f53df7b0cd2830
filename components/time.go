package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// TimeData is the per-frame clock shared by every gameplay system (singleton component).
type TimeData struct {
	Delta   time.Duration // game time advanced this frame; zero while paused
	Elapsed time.Duration // total game time
	Frame   uint64        // frames stepped so far, paused frames included
}

var Time = donburi.NewComponentType[TimeData]()

// DeltaSeconds returns Delta as float seconds.
func (t *TimeData) DeltaSeconds() float32 {
	return float32(t.Delta.Seconds())
}
