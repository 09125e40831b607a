package scene

import "sort"

// Piece is a domain object on the table. A piece may be represented by
// any number of on-screen token views (see Registry).
type Piece struct {
	ID   string
	Name string

	// Sort is the stacking/placement ordering key. HasSort is false for
	// pieces without a comparable key; they keep their relative input
	// order wherever pieces are sorted.
	Sort    float64
	HasSort bool
}

// SortByKey stable-sorts pieces by their ordering key in place. Pieces
// with a missing key compare equal to everything.
func SortByKey(ps []*Piece) {
	sort.SliceStable(ps, func(i, j int) bool {
		a, b := ps[i], ps[j]
		if a == nil || b == nil || !a.HasSort || !b.HasSort {
			return false
		}
		return a.Sort < b.Sort
	})
}

// Table holds every piece on the board, keyed by id.
type Table struct {
	pieces map[string]*Piece
	order  []string
}

func NewTable() *Table {
	return &Table{pieces: make(map[string]*Piece)}
}

// Put adds or replaces a piece.
func (t *Table) Put(p *Piece) {
	if t == nil || p == nil || p.ID == "" {
		return
	}
	if _, ok := t.pieces[p.ID]; !ok {
		t.order = append(t.order, p.ID)
	}
	t.pieces[p.ID] = p
}

// Piece returns the piece with the given id, or nil.
func (t *Table) Piece(id string) *Piece {
	if t == nil {
		return nil
	}
	return t.pieces[id]
}

// Pieces returns all pieces in insertion order.
func (t *Table) Pieces() []*Piece {
	if t == nil {
		return nil
	}
	out := make([]*Piece, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.pieces[id])
	}
	return out
}

// Remove deletes a piece by id.
func (t *Table) Remove(id string) {
	if t == nil {
		return
	}
	if _, ok := t.pieces[id]; !ok {
		return
	}
	delete(t.pieces, id)
	for i, oid := range t.order {
		if oid == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Clear removes every piece.
func (t *Table) Clear() {
	if t == nil {
		return
	}
	t.pieces = make(map[string]*Piece)
	t.order = nil
}
