package personio

import (
	"runtime"
	"sync"
)

const redacted = "[REDACTED]"

// Secret holds a credential. It renders as [REDACTED] in every format verb, in JSON and in
// text encodings, so it can travel inside structs that get logged. Destroy zeroes the bytes.
type Secret struct {
	mu    sync.Mutex
	value []byte
}

func NewSecret(value string) *Secret {
	s := &Secret{value: []byte(value)}
	runtime.SetFinalizer(s, (*Secret).Destroy)
	return s
}

// Reveal returns the plain value. Callers must not log it.
func (s *Secret) Reveal() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.value)
}

func (s *Secret) IsSet() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.value) > 0
}

// Destroy overwrites the value with zeroes and drops it. Safe to call more than once.
func (s *Secret) Destroy() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.value {
		s.value[i] = 0
	}
	s.value = nil
}

func (s *Secret) String() string {
	return redacted
}

func (s *Secret) GoString() string {
	return redacted
}

func (s *Secret) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}

func (s *Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}
