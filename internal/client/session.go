package client

import "sync"

type SessionState string

const (
	StateAnonymous     SessionState = "anonymous"
	StateAuthenticated SessionState = "authenticated"
)

type Event string

const (
	EventLoginSucceeded Event = "login_succeeded"
	// EventUnauthorized llega con cualquier 401 del servidor.
	EventUnauthorized Event = "unauthorized"
	EventLogout       Event = "logout"
)

// Transition es la única regla de la sesión. Eventos desconocidos no cambian el estado.
func Transition(s SessionState, e Event) SessionState {
	switch e {
	case EventLoginSucceeded:
		return StateAuthenticated
	case EventUnauthorized, EventLogout:
		return StateAnonymous
	default:
		return s
	}
}

// Session guarda el token y el estado; se pasa a cada operación autenticada.
type Session struct {
	mu    sync.RWMutex
	state SessionState
	token string
}

func NewSession() *Session {
	return &Session{state: StateAnonymous}
}

func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Apply aplica el evento; el token se conserva solo en estado autenticado.
func (s *Session) Apply(e Event, token string) SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Transition(s.state, e)
	if s.state == StateAuthenticated {
		if token != "" {
			s.token = token
		}
	} else {
		s.token = ""
	}
	return s.state
}
