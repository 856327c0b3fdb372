package session

// Scope decides which gate serves a request.
type Scope interface {
	// Gate returns the gate for a visitor. Application scope ignores the id.
	Gate(visitorID string) Gate
	// PerVisitor reports whether requests must carry a visitor id.
	PerVisitor() bool
}

// ApplicationScope shares one gate with every request. Logging in from one
// browser logs in every browser.
type ApplicationScope struct {
	gate Gate
}

func NewApplicationScope(gate Gate) *ApplicationScope {
	return &ApplicationScope{gate: gate}
}

func (s *ApplicationScope) Gate(string) Gate { return s.gate }

func (s *ApplicationScope) PerVisitor() bool { return false }

// VisitorScope gives each visitor its own gate.
type VisitorScope struct {
	registry *Registry
}

func NewVisitorScope(registry *Registry) *VisitorScope {
	return &VisitorScope{registry: registry}
}

func (s *VisitorScope) Gate(visitorID string) Gate { return s.registry.GateFor(visitorID) }

func (s *VisitorScope) PerVisitor() bool { return true }
