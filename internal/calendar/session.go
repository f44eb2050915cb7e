package calendar

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Mode string

const (
	ModeDay  Mode = "day"
	ModeWeek Mode = "week"
)

// Params is the immutable query descriptor a presentation layer hands the
// session on every parameter change: selected doctor, anchor date, view
// mode, and the free-text search.
type Params struct {
	DoctorID string
	Day      time.Time
	Mode     Mode
	Search   string
}

type State int

const (
	// Idle: no doctor selected yet.
	Idle State = iota
	// Loading: a fetch cycle is in flight.
	Loading
	// Ready: the latest cycle committed; Schedule may legitimately hold
	// zero appointments, which is not an error.
	Ready
	// Failed: the latest cycle errored; no partial data is exposed.
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Snapshot is the session's externally visible state at one instant.
type Snapshot struct {
	State    State
	Params   Params
	Schedule *Schedule
	Err      error
}

// Session drives the fetch-then-render cycle for an embedding presentation
// layer. Each Update starts one asynchronous cycle tagged with a
// monotonically increasing token; only the response carrying the newest
// token commits, so a stale in-flight response can never overwrite fresher
// state. Superseded cycles are not interrupted, their results are dropped
// on arrival.
type Session struct {
	svc *Service
	log *zap.Logger

	mu     sync.Mutex
	latest uint64
	snap   Snapshot
}

func NewSession(svc *Service, log *zap.Logger) *Session {
	return &Session{svc: svc, log: log}
}

// Update registers new parameters and starts a fetch cycle. The returned
// channel closes when the cycle either commits or is discarded as stale.
func (s *Session) Update(ctx context.Context, p Params) <-chan struct{} {
	done := make(chan struct{})

	s.mu.Lock()
	s.latest++
	token := s.latest
	if p.DoctorID == "" {
		s.snap = Snapshot{State: Idle, Params: p}
		s.mu.Unlock()
		close(done)
		return done
	}
	s.snap = Snapshot{State: Loading, Params: p}
	s.mu.Unlock()

	go func() {
		defer close(done)

		var sched *Schedule
		var err error
		if p.Mode == ModeWeek {
			sched, err = s.svc.WeekSchedule(ctx, p.DoctorID, p.Day, p.Search)
		} else {
			sched, err = s.svc.DaySchedule(ctx, p.DoctorID, p.Day, p.Search)
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if token != s.latest {
			s.log.Debug("discarding stale calendar response",
				zap.Uint64("token", token), zap.Uint64("latest", s.latest))
			return
		}
		if err != nil {
			s.snap = Snapshot{State: Failed, Params: p, Err: err}
			return
		}
		s.snap = Snapshot{State: Ready, Params: p, Schedule: sched}
	}()
	return done
}

// Snapshot returns the current committed state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}
