package touch

import (
	"testing"

	"github.com/louistrue/T-Display-S3-Long/hal"
)

func TestDecodeAxisSwapAndMirror(t *testing.T) {
	d := NewDecoder(180, 640)

	// Controller frame (100, 50) lands at display (50, 539): x takes the
	// raw Y, y mirrors the raw X against the long edge.
	got := d.Decode(hal.TouchData{Present: true, Points: 1, X: 100, Y: 50})
	want := Sample{Present: true, X: 50, Y: 539}
	if got != want {
		t.Fatalf("Decode = %+v, want %+v", got, want)
	}
}

func TestDecodeCorners(t *testing.T) {
	d := NewDecoder(180, 640)

	cases := []struct {
		rawX, rawY int
		x, y       int
	}{
		{0, 0, 0, 639},
		{639, 0, 0, 0},
		{0, 179, 179, 639},
		{639, 179, 179, 0},
	}
	for _, c := range cases {
		got := d.Decode(hal.TouchData{Present: true, Points: 1, X: c.rawX, Y: c.rawY})
		if got.X != c.x || got.Y != c.y {
			t.Fatalf("Decode(raw %d,%d) = (%d,%d), want (%d,%d)",
				c.rawX, c.rawY, got.X, got.Y, c.x, c.y)
		}
	}
}

func TestDecodeClampsOutOfRange(t *testing.T) {
	d := NewDecoder(180, 640)

	got := d.Decode(hal.TouchData{Present: true, Points: 1, X: 700, Y: 300})
	if got.X != 179 || got.Y != 0 {
		t.Fatalf("overflow sample = (%d,%d), want clamped (179,0)", got.X, got.Y)
	}
	got = d.Decode(hal.TouchData{Present: true, Points: 1, X: -5, Y: -5})
	if got.X != 0 || got.Y != 639 {
		t.Fatalf("negative sample = (%d,%d), want clamped (0,639)", got.X, got.Y)
	}
}

func TestDecodeCollapsesNonSingleTouch(t *testing.T) {
	d := NewDecoder(180, 640)

	cases := []hal.TouchData{
		{},
		{Present: true, Points: 0, X: 100, Y: 50},
		{Present: true, Points: 2, X: 100, Y: 50},
		{Present: true, Points: 1, GestureCode: 3, X: 100, Y: 50},
	}
	for i, raw := range cases {
		if got := d.Decode(raw); got.Present {
			t.Fatalf("case %d: Decode(%+v) = %+v, want absent", i, raw, got)
		}
	}
}
