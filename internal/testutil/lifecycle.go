package testutil

import (
	"context"
	"sync"
)

// LifecycleJournal records the order in which service hooks fire across a
// registry init/dispose cycle. Entries look like "cache:init" and
// "cache:dispose".
type LifecycleJournal struct {
	mu      sync.Mutex
	entries []string
}

// Entries returns a snapshot of the recorded hook invocations.
func (j *LifecycleJournal) Entries() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]string, len(j.entries))
	copy(out, j.entries)
	return out
}

func (j *LifecycleJournal) record(entry string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, entry)
}

// Service builds a journaling service under the given key.
func (j *LifecycleJournal) Service(key string) *RecordedService {
	return &RecordedService{journal: j, key: key}
}

// RecordedService is a managed service whose hooks log to a shared journal
// and can be scripted to fail or panic.
type RecordedService struct {
	journal *LifecycleJournal
	key     string

	InitErr     error
	DisposeErr  error
	PanicOnInit bool
}

// Init records the invocation and returns the scripted outcome.
func (s *RecordedService) Init(_ context.Context) error {
	s.journal.record(s.key + ":init")
	if s.PanicOnInit {
		panic("scripted init panic: " + s.key)
	}
	return s.InitErr
}

// Dispose records the invocation and returns the scripted outcome.
func (s *RecordedService) Dispose(_ context.Context) error {
	s.journal.record(s.key + ":dispose")
	return s.DisposeErr
}
