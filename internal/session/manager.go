package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"damas/internal/damas"
	"damas/internal/log2"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrGameOver        = errors.New("game is over")
)

type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session), now: time.Now}
}

// Create starts a session from an eight-row layout, or from the standard
// opening when layout is empty.
func (m *Manager) Create(layout string) (*Session, error) {
	if layout == "" {
		return m.add(damas.NewGame()), nil
	}
	g, err := damas.NewGameFromLayout(layout)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return m.add(g), nil
}

// CreateFromPosition starts a session from an encoded position.
func (m *Manager) CreateFromPosition(enc string) (*Session, error) {
	g, err := damas.DecodePosition(enc)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return m.add(g), nil
}

func (m *Manager) add(g *damas.Game) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	s := &Session{
		ID:        uuid.NewString(),
		createdAt: now,
		updatedAt: now,
		game:      g,
	}
	m.sessions[s.ID] = s
	log.Debug().Str("session", s.ID).Str("position", g.Encode()).Msg("session created")
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(m.sessions, id)
	log.Debug().Str("session", id).Msg("session removed")
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Play submits one leg for the side to move. A rejected move is reported in
// the result, not as an error.
func (m *Manager) Play(id string, from, to damas.Coord) (damas.Result, error) {
	s, err := m.Get(id)
	if err != nil {
		return damas.Result{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.winner != nil {
		return damas.Result{}, fmt.Errorf("%w: %s won", ErrGameOver, *s.winner)
	}

	mover := s.game.Turn
	res := s.game.Play(from, to)
	if res.Outcome == damas.Rejected {
		log.Debug().Str("session", id).Stringer("from", from).Stringer("to", to).Msg("move rejected")
		return res, nil
	}

	now := m.now()
	s.history = append(s.history, Record{Move: res.Move, Outcome: res.Outcome, Hash: s.game.Hash, At: now})
	s.updatedAt = now
	if res.Outcome == damas.GameOver {
		w := res.Winner
		s.winner = &w
	}
	log.Debug().
		Str("session", id).
		Stringer("player", mover).
		Stringer("move", res.Move).
		Stringer("outcome", res.Outcome).
		Bool("promoted", res.Promoted).
		Msg("move played")
	return res, nil
}

// Legal returns the capture chains the side to move must choose from and the
// moves it may submit next.
func (m *Manager) Legal(id string) ([]damas.Chain, []damas.Move, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.winner != nil {
		return nil, nil, nil
	}
	chains := s.game.LegalChains()
	moves := s.game.LegalMoves()
	if log2.Tracing() {
		log.Trace().Str("session", id).Msgf("legal chains\n%s", spew.Sdump(chains))
	}
	return chains, moves, nil
}

// Destinations lists where the piece on c may go next.
func (m *Manager) Destinations(id string, c damas.Coord) ([]damas.Coord, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.winner != nil {
		return nil, nil
	}
	return s.game.Destinations(c), nil
}

func (m *Manager) Snapshot(id string) (Snapshot, error) {
	s, err := m.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(), nil
}

func (m *Manager) History(id string) ([]Record, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.history))
	copy(out, s.history)
	return out, nil
}
