// Package recording provides session-scoped recording of intermediate values
// from library and user functions.
//
// A function declares itself recordable once:
//
//	var rec = recording.Recordable("myapp/ansatz", "buildLayer")
//
//	func buildLayer(...) {
//		defer rec.Start()()
//		...
//		rec.Debug("nbGates", n)
//	}
//
// Recording is off until a [Session] enables it for that function:
//
//	session := recording.NewSession()
//	session.SetLevel(rec, recording.Debug)
//	stop := session.Start()
//	defer stop()
//
// Each call of a recordable function opens a [Group] in every active session;
// recorded entries land in the current group and are forwarded to any zerolog
// loggers attached to the session.
package recording

import (
	"sync"

	"github.com/rs/zerolog"
)

// Level specifies the importance of a recording event. A larger value means
// higher importance, mirroring log levels.
type Level int8

const (
	Debug Level = iota + 1
	Info
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

func (l Level) zerologLevel() zerolog.Level {
	switch l {
	case Debug:
		return zerolog.DebugLevel
	case Info:
		return zerolog.InfoLevel
	default:
		return zerolog.NoLevel
	}
}

// FuncID identifies a recordable function.
type FuncID struct {
	// Module is the name of the module or package the function belongs to.
	Module string
	// Name is the function's name.
	Name string
}

func (f FuncID) String() string { return f.Module + "." + f.Name }

// Recorder records data on behalf of one recordable function. Obtain one with
// [Recordable].
type Recorder struct {
	id FuncID
}

// ID returns the identifier of the function this recorder belongs to.
func (r *Recorder) ID() FuncID { return r.id }

var (
	mu        sync.Mutex
	recorders = make(map[FuncID]*Recorder)
	sessions  []*Session
)

// Recordable returns the Recorder for the given module and function name,
// creating it on first use. Calls with the same identifier return the same
// Recorder.
func Recordable(module, name string) *Recorder {
	mu.Lock()
	defer mu.Unlock()
	id := FuncID{Module: module, Name: name}
	if r, ok := recorders[id]; ok {
		return r
	}
	r := &Recorder{id: id}
	recorders[id] = r
	return r
}

// Start marks the beginning of one call of the recordable function: every
// active session opens a new record group for it. The returned function
// closes those groups and is meant to be deferred:
//
//	defer rec.Start()()
func (r *Recorder) Start() func() {
	mu.Lock()
	defer mu.Unlock()
	for _, s := range sessions {
		s.enter(r.id)
	}
	return func() {
		mu.Lock()
		defer mu.Unlock()
		for _, s := range sessions {
			s.exit()
		}
	}
}

// Record records the key/value pair in every active session enabled for the
// given level.
//
// The value is stored as-is, not snapshotted: recording mutable data and
// changing it afterwards changes what the session's records show.
func (r *Recorder) Record(level Level, key string, value any) {
	mu.Lock()
	defer mu.Unlock()
	for _, s := range sessions {
		if s.enabledFor(level, r.id) {
			s.handle(level, r.id, key, value)
		}
	}
}

// Debug records the pair with Debug level.
func (r *Recorder) Debug(key string, value any) { r.Record(Debug, key, value) }

// Info records the pair with Info level.
func (r *Recorder) Info(key string, value any) { r.Record(Info, key, value) }

// Enabled reports whether any active session records the given level for this
// recorder. Use it to skip expensive value computation when nothing records.
func (r *Recorder) Enabled(level Level) bool {
	mu.Lock()
	defer mu.Unlock()
	for _, s := range sessions {
		if s.enabledFor(level, r.id) {
			return true
		}
	}
	return false
}

// Entry is one recorded key/value pair with its level and origin.
type Entry struct {
	Level  Level
	FuncID FuncID
	Key    string
	Value  any
}

// Group collects the entries recorded during one call of a recordable
// function.
type Group struct {
	ID      int
	FuncID  FuncID
	Entries []Entry
}

// Session manages data recording: which functions record at which level, the
// recorded history, and the loggers notified of each entry.
//
// A session records nothing until activated with [Session.Start] and is safe
// for use from multiple goroutines while active.
type Session struct {
	levels  map[FuncID]Level
	history []*Group
	stack   []*Group
	loggers []zerolog.Logger
	nextID  int
}

func NewSession() *Session {
	return &Session{levels: make(map[FuncID]Level)}
}

// SetLevel enables recording for r at the given level and above in this
// session.
func (s *Session) SetLevel(r *Recorder, level Level) {
	mu.Lock()
	defer mu.Unlock()
	s.levels[r.id] = level
}

// Start activates the session. The returned function deactivates it and is
// meant to be deferred.
func (s *Session) Start() func() {
	mu.Lock()
	defer mu.Unlock()
	sessions = append(sessions, s)
	return func() {
		mu.Lock()
		defer mu.Unlock()
		for i, active := range sessions {
			if active == s {
				sessions = append(sessions[:i], sessions[i+1:]...)
				break
			}
		}
	}
}

// AttachLogger connects a zerolog logger which receives every entry recorded
// by the session as a structured event.
func (s *Session) AttachLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	s.loggers = append(s.loggers, l)
}

// Records returns the recorded groups in order.
func (s *Session) Records() []*Group {
	mu.Lock()
	defer mu.Unlock()
	out := make([]*Group, len(s.history))
	copy(out, s.history)
	return out
}

// History returns the recorded groups originating from r, in order.
func (s *Session) History(r *Recorder) []*Group {
	mu.Lock()
	defer mu.Unlock()
	var out []*Group
	for _, g := range s.history {
		if g.FuncID == r.id {
			out = append(out, g)
		}
	}
	return out
}

func (s *Session) enabledFor(level Level, id FuncID) bool {
	set, ok := s.levels[id]
	return ok && level >= set
}

func (s *Session) enter(id FuncID) {
	g := &Group{ID: s.nextID, FuncID: id}
	s.nextID++
	s.history = append(s.history, g)
	s.stack = append(s.stack, g)
}

func (s *Session) exit() {
	if len(s.stack) == 0 {
		return
	}
	g := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	if len(g.Entries) == 0 {
		// drop groups that recorded nothing
		for i := len(s.history) - 1; i >= 0; i-- {
			if s.history[i] == g {
				s.history = append(s.history[:i], s.history[i+1:]...)
				break
			}
		}
	}
}

func (s *Session) handle(level Level, id FuncID, key string, value any) {
	var g *Group
	if len(s.stack) > 0 {
		g = s.stack[len(s.stack)-1]
	} else {
		// record outside Start/stop lands in its own group
		g = &Group{ID: s.nextID, FuncID: id}
		s.nextID++
		s.history = append(s.history, g)
	}
	g.Entries = append(g.Entries, Entry{Level: level, FuncID: id, Key: key, Value: value})

	for _, l := range s.loggers {
		l.WithLevel(level.zerologLevel()).
			Int("recordGroup", g.ID).
			Msgf("%s: %s=%v", id, key, value)
	}
}
