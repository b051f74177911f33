package breakout

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Recording holds enough to rebuild a session tick for tick: the seed,
// arena and settings it started from and the sign of every intent fed to it.
type Recording struct {
	ID        int64
	Seed      int64
	Arena     core.Vec2
	Settings  Settings
	Intents   []int8
	Ticks     uint64
	Score     int
	Misses    int
	Phase     Phase
	FinalHash uint64
	CreatedAt time.Time
}

// Recorder captures the intents of a live session.
type Recorder struct {
	rec Recording
}

// NewRecorder starts a recording for a session built with NewSeeded.
func NewRecorder(seed int64, arena core.Vec2, settings Settings) *Recorder {
	return &Recorder{rec: Recording{
		Seed:     seed,
		Arena:    arena,
		Settings: settings,
		Intents:  make([]int8, 0, 1024),
	}}
}

// Record appends the intent for one tick. Only its direction is kept; the
// magnitude is the session's paddle speed on replay.
func (r *Recorder) Record(intent int) {
	r.rec.Intents = append(r.rec.Intents, int8(core.Sign(intent)))
}

// Len returns the number of recorded ticks.
func (r *Recorder) Len() int {
	return len(r.rec.Intents)
}

// Finish stamps the outcome of s onto the recording and returns it.
func (r *Recorder) Finish(s *Session) Recording {
	snap := s.Snapshot()
	rec := r.rec
	rec.Intents = append([]int8(nil), r.rec.Intents...)
	rec.Ticks = snap.Tick
	rec.Score = snap.Score
	rec.Misses = snap.Misses
	rec.Phase = snap.Phase
	rec.FinalHash = snap.Hash()
	return rec
}

// Replay rebuilds the recorded session and feeds it every intent.
func Replay(rec Recording) (Snapshot, error) {
	s, err := NewSeeded(rec.Arena, rec.Settings, rec.Seed)
	if err != nil {
		return Snapshot{}, fmt.Errorf("breakout: replay: %w", err)
	}
	for _, d := range rec.Intents {
		s.Tick(int(d) * s.Speed())
	}
	return s.Snapshot(), nil
}

// Verify replays rec and reports whether it ends in the recorded state.
func Verify(rec Recording) (Snapshot, bool, error) {
	snap, err := Replay(rec)
	if err != nil {
		return Snapshot{}, false, err
	}
	return snap, snap.Hash() == rec.FinalHash, nil
}
