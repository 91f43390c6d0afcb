package player

import "github.com/gopxl/beep/v2"

// loopStreamer restarts the wrapped stream from the beginning when it ends
// while loop is set. Fields are guarded by the speaker lock.
type loopStreamer struct {
	s    beep.StreamSeeker
	loop bool
}

func (l *loopStreamer) Stream(samples [][2]float64) (int, bool) {
	n := 0
	restarted := false
	for n < len(samples) {
		k, ok := l.s.Stream(samples[n:])
		n += k
		if ok && k > 0 {
			restarted = false
			continue
		}
		// An empty stream right after a restart would spin forever.
		if !l.loop || restarted || l.s.Seek(0) != nil {
			return n, n > 0
		}
		restarted = true
	}
	return n, true
}

func (l *loopStreamer) Err() error {
	return l.s.Err()
}
