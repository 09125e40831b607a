package scene

import "testing"

func piece(id string, sort ...float64) *Piece {
	p := &Piece{ID: id, Name: id}
	if len(sort) > 0 {
		p.Sort = sort[0]
		p.HasSort = true
	}
	return p
}

func ids(ps []*Piece) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func equalIDs(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortByKey(t *testing.T) {
	cases := []struct {
		name string
		in   []*Piece
		want []string
	}{
		{
			name: "by_key",
			in:   []*Piece{piece("c", 3), piece("a", 1), piece("b", 2)},
			want: []string{"a", "b", "c"},
		},
		{
			name: "missing_keys_keep_input_order",
			in:   []*Piece{piece("x"), piece("y"), piece("z")},
			want: []string{"x", "y", "z"},
		},
		{
			name: "missing_key_compares_equal_to_everything",
			in:   []*Piece{piece("b", 2), piece("x"), piece("a", 1)},
			want: []string{"b", "x", "a"},
		},
		{
			name: "stable_for_equal_keys",
			in:   []*Piece{piece("first", 5), piece("second", 5), piece("third", 1)},
			want: []string{"third", "first", "second"},
		},
		{
			name: "empty",
			in:   nil,
			want: nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			SortByKey(c.in)
			if got := ids(c.in); !equalIDs(got, c.want) {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestTable(t *testing.T) {
	tab := NewTable()
	tab.Put(piece("a"))
	tab.Put(piece("b"))
	tab.Put(piece("c"))

	if tab.Piece("b") == nil || tab.Piece("missing") != nil {
		t.Fatalf("lookup broken")
	}
	if got := ids(tab.Pieces()); !equalIDs(got, []string{"a", "b", "c"}) {
		t.Fatalf("expected insertion order, got %v", got)
	}

	// Replacing a piece keeps its slot in the order.
	tab.Put(&Piece{ID: "b", Name: "b2"})
	if got := ids(tab.Pieces()); !equalIDs(got, []string{"a", "b", "c"}) {
		t.Fatalf("replace must not reorder, got %v", got)
	}
	if tab.Piece("b").Name != "b2" {
		t.Fatalf("replace should swap the stored piece")
	}

	tab.Remove("b")
	if got := ids(tab.Pieces()); !equalIDs(got, []string{"a", "c"}) {
		t.Fatalf("remove broken, got %v", got)
	}
	tab.Remove("b") // no-op

	tab.Clear()
	if len(tab.Pieces()) != 0 {
		t.Fatalf("clear should drop everything")
	}
}

func TestTableIgnoresBadInput(t *testing.T) {
	tab := NewTable()
	tab.Put(nil)
	tab.Put(&Piece{})
	if len(tab.Pieces()) != 0 {
		t.Fatalf("nil and id-less pieces must be ignored")
	}

	var nilTab *Table
	nilTab.Put(piece("a"))
	if nilTab.Piece("a") != nil || nilTab.Pieces() != nil {
		t.Fatalf("nil table should be inert")
	}
}
