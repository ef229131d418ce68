package graphics

import "testing"

func TestColorConstructors(t *testing.T) {
	cases := []struct {
		name string
		got  Color
		want Color
	}{
		{"RGB is opaque", RGB(0x12, 0x34, 0x56), 0xFF123456},
		{"RGBA8 packs all bytes", RGBA8(0x12, 0x34, 0x56, 0x78), 0x78123456},
		{"RGBA full alpha", RGBA(0xFF, 0x00, 0x00, 1.0), 0xFFFF0000},
		{"RGBA zero alpha", RGBA(0xFF, 0x00, 0x00, 0.0), 0x00FF0000},
		{"RGBA half alpha rounds", RGBA(0, 0, 0, 0.5), 0x80000000},
		{"RGBA clamps above one", RGBA(0, 0, 0, 2.0), 0xFF000000},
		{"RGBA clamps below zero", RGBA(0, 0, 0, -1.0), 0x00000000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %#08x, want %#08x", uint32(tc.got), uint32(tc.want))
			}
		})
	}
}

func TestColorComponents(t *testing.T) {
	c := RGBA8(0x10, 0x20, 0x30, 0x40)
	r, g, b, a := c.RGBA8Components()
	if r != 0x10 || g != 0x20 || b != 0x30 || a != 0x40 {
		t.Errorf("components = %x %x %x %x", r, g, b, a)
	}

	rf, gf, bf, af := ColorWhite.RGBAF()
	if rf != 1 || gf != 1 || bf != 1 || af != 1 {
		t.Errorf("white RGBAF = %v %v %v %v, want all 1", rf, gf, bf, af)
	}
}

func TestColorWithAlpha(t *testing.T) {
	c := RGB(0xAA, 0xBB, 0xCC)
	if got := c.WithAlpha(0); got != 0x00AABBCC {
		t.Errorf("WithAlpha(0) = %#08x", uint32(got))
	}
	if got := c.WithAlpha8(0x7F); got != 0x7FAABBCC {
		t.Errorf("WithAlpha8(0x7F) = %#08x", uint32(got))
	}
	if got := ColorBlack.Alpha(); got != 1 {
		t.Errorf("black alpha = %v, want 1", got)
	}
	if got := ColorTransparent.Alpha(); got != 0 {
		t.Errorf("transparent alpha = %v, want 0", got)
	}
}
