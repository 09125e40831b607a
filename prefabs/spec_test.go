package prefabs

import (
	"image/color"
	"testing"
)

func TestLoadBoardSpecEmbedded(t *testing.T) {
	spec, err := LoadBoardSpec("board.yaml")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if spec.Name != "demo" || spec.Width != 1280 || spec.Height != 720 {
		t.Fatalf("unexpected header: %+v", spec)
	}
	if len(spec.Pieces) != 5 {
		t.Fatalf("expected 5 pieces, got %d", len(spec.Pieces))
	}

	byID := make(map[string]PieceSpec)
	for _, p := range spec.Pieces {
		byID[p.ID] = p
	}

	knight := byID["knight"]
	if knight.Sort == nil || *knight.Sort != 1 {
		t.Fatalf("knight should carry ordering key 1")
	}
	if len(byID["archer"].Tokens) != 2 {
		t.Fatalf("archer should have two token views")
	}
	if byID["wagon"].Sort != nil {
		t.Fatalf("wagon should have no ordering key")
	}
	if byID["wagon"].Tokens[0].Rotation != 20 {
		t.Fatalf("wagon rotation lost")
	}
	if !byID["crate"].Tokens[0].Disabled {
		t.Fatalf("crate token should be disabled")
	}
	if byID["crate"].Layer != "scenery" {
		t.Fatalf("crate should sit on the scenery layer")
	}
}

func TestLoadMissingSpec(t *testing.T) {
	if _, err := LoadBoardSpec("no-such-board.yaml"); err == nil {
		t.Fatalf("expected error for missing spec")
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#c0392b", want: color.NRGBA{R: 0xc0, G: 0x39, B: 0x2b, A: 0xff}},
		{in: "c0392b", want: color.NRGBA{R: 0xc0, G: 0x39, B: 0x2b, A: 0xff}},
		{in: "#11223344", want: color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}},
		{in: " #ffffff ", want: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{in: "", wantErr: true},
		{in: "#fff", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseColor(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse %q: %v", c.in, err)
			}
			if got != c.want {
				t.Fatalf("parse %q = %+v, want %+v", c.in, got, c.want)
			}
		})
	}
}
