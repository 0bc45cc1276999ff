package session

import (
	"sync"
	"time"

	"damas/internal/damas"
)

// Record is one submitted leg that the game accepted.
type Record struct {
	Move    damas.Move    `json:"move"`
	Outcome damas.Outcome `json:"outcome"`
	Hash    uint64        `json:"hash"`
	At      time.Time     `json:"at"`
}

// Session owns one game. ID never changes; everything else is guarded by mu
// and read through the Manager.
type Session struct {
	ID string

	mu        sync.Mutex
	createdAt time.Time
	updatedAt time.Time
	game      *damas.Game
	history   []Record
	winner    *damas.Player
}

// Snapshot is a read-only view of a session at one point in time.
type Snapshot struct {
	ID         string        `json:"id"`
	Position   string        `json:"position"`
	Board      string        `json:"board"`
	Turn       damas.Player  `json:"turn"`
	InSequence bool          `json:"in_sequence"`
	Stalemated bool          `json:"stalemated"`
	Winner     *damas.Player `json:"winner,omitempty"`
	Plies      int           `json:"plies"`
	White      int           `json:"white"`
	Black      int           `json:"black"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{
		ID:         s.ID,
		Position:   s.game.Encode(),
		Board:      s.game.String(),
		Turn:       s.game.Turn,
		InSequence: s.game.InSequence(),
		Stalemated: s.winner == nil && s.game.Stalemated(),
		Winner:     s.winner,
		Plies:      len(s.history),
		White:      s.game.Count(damas.White),
		Black:      s.game.Count(damas.Black),
		CreatedAt:  s.createdAt,
		UpdatedAt:  s.updatedAt,
	}
}
