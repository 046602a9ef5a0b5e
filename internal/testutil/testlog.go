package testlog

import (
	"sync"

	"parcel-marketplace/internal/logx"
)

// Entry is one recorded log call.
type Entry struct {
	Level  string
	Msg    string
	Fields []logx.Field
}

// Field returns the value of the last field named key.
func (e Entry) Field(key string) (any, bool) {
	for i := len(e.Fields) - 1; i >= 0; i-- {
		if e.Fields[i].Key == key {
			return e.Fields[i].Value, true
		}
	}
	return nil, false
}

// Recorder collects entries from every logger it hands out. Safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func New() *Recorder { return &Recorder{} }

// Logger returns a logx.Logger writing into r.
func (r *Recorder) Logger() logx.Logger {
	return bound{r: r}
}

// Entries returns a snapshot of what was logged so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Has reports whether any entry carries msg.
func (r *Recorder) Has(msg string) bool {
	return r.Find(msg) != nil
}

// Find returns the first entry with msg, or nil.
func (r *Recorder) Find(msg string) *Entry {
	for _, e := range r.Entries() {
		if e.Msg == msg {
			e := e
			return &e
		}
	}
	return nil
}

func (r *Recorder) add(level, msg string, base, fields []logx.Field) {
	all := make([]logx.Field, 0, len(base)+len(fields))
	all = append(append(all, base...), fields...)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Msg: msg, Fields: all})
}

type bound struct {
	r    *Recorder
	base []logx.Field
}

func (b bound) Debug(msg string, f ...logx.Field) { b.r.add("debug", msg, b.base, f) }
func (b bound) Info(msg string, f ...logx.Field)  { b.r.add("info", msg, b.base, f) }
func (b bound) Warn(msg string, f ...logx.Field)  { b.r.add("warn", msg, b.base, f) }
func (b bound) Error(msg string, f ...logx.Field) { b.r.add("error", msg, b.base, f) }

func (b bound) With(f ...logx.Field) logx.Logger {
	base := make([]logx.Field, 0, len(b.base)+len(f))
	return bound{r: b.r, base: append(append(base, b.base...), f...)}
}

func (b bound) Sync() error { return nil }

var _ logx.Logger = bound{}
