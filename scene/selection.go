package scene

import "github.com/milk9111/tabletop/ecs"

// Selection is the set of currently selected pieces plus the
// exclusivity token guarding toggle-vs-extend semantics during a pick
// gesture. Exactly one movable entity may hold the token at a time.
type Selection struct {
	pieces map[string]*Piece
	order  []string
	holder ecs.Entity
}

func NewSelection() *Selection {
	return &Selection{pieces: make(map[string]*Piece)}
}

// Add inserts a piece into the selection.
func (s *Selection) Add(p *Piece) {
	if s == nil || p == nil || p.ID == "" {
		return
	}
	if _, ok := s.pieces[p.ID]; ok {
		return
	}
	s.pieces[p.ID] = p
	s.order = append(s.order, p.ID)
}

// Remove takes a piece out of the selection.
func (s *Selection) Remove(p *Piece) {
	if s == nil || p == nil {
		return
	}
	if _, ok := s.pieces[p.ID]; !ok {
		return
	}
	delete(s.pieces, p.ID)
	for i, id := range s.order {
		if id == p.ID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Contains reports whether the piece is selected.
func (s *Selection) Contains(p *Piece) bool {
	if s == nil || p == nil {
		return false
	}
	_, ok := s.pieces[p.ID]
	return ok
}

// Pieces returns the selected pieces in selection order.
func (s *Selection) Pieces() []*Piece {
	if s == nil {
		return nil
	}
	out := make([]*Piece, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.pieces[id])
	}
	return out
}

// Len returns the number of selected pieces.
func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.pieces)
}

// Clear empties the selection and releases the exclusivity token.
func (s *Selection) Clear() {
	if s == nil {
		return
	}
	s.pieces = make(map[string]*Piece)
	s.order = nil
	s.holder = 0
}

// Claim hands the exclusivity token to e if nobody holds it yet.
func (s *Selection) Claim(e ecs.Entity) bool {
	if s == nil || s.holder.Valid() {
		return false
	}
	s.holder = e
	return true
}

// Holder returns the entity currently holding the exclusivity token,
// or the zero entity.
func (s *Selection) Holder() ecs.Entity {
	if s == nil {
		return 0
	}
	return s.holder
}

// Release drops the exclusivity token.
func (s *Selection) Release() {
	if s == nil {
		return
	}
	s.holder = 0
}
