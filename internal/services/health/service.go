package health

// StateFunc reports the current generation state.
type StateFunc func() string

// Service encapsulates health-related checks.
type Service struct {
	provider string
	model    string
	state    StateFunc
}

// NewService constructs a new health service.
func NewService(provider, model string, state StateFunc) *Service {
	return &Service{provider: provider, model: model, state: state}
}

// Status returns a simple health payload.
func (s *Service) Status() map[string]any {
	out := map[string]any{"ok": true}
	if s == nil {
		return out
	}
	if s.provider != "" {
		out["provider"] = s.provider
	}
	if s.model != "" {
		out["model"] = s.model
	}
	if s.state != nil {
		out["state"] = s.state()
	}
	return out
}
