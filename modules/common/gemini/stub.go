package gemini

import (
	"context"
	"sync"
)

// Stub - scripted ContentGenerator for local runs and tests; never touches
// the network.
type Stub struct {
	Handler func(model string, parts []ContentPart) (*ModelResponse, error)

	mu    sync.Mutex
	calls []StubCall
}

// StubCall - one recorded GenerateContent invocation
type StubCall struct {
	Model string
	Parts []ContentPart
}

func (s *Stub) GenerateContent(_ context.Context, model string, parts []ContentPart) (*ModelResponse, error) {
	s.mu.Lock()
	s.calls = append(s.calls, StubCall{Model: model, Parts: parts})
	s.mu.Unlock()

	if s.Handler == nil {
		return &ModelResponse{}, nil
	}
	return s.Handler(model, parts)
}

// Calls - copy of the recorded invocations
func (s *Stub) Calls() []StubCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StubCall, len(s.calls))
	copy(out, s.calls)
	return out
}
