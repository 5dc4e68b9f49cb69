package grid

import "testing"

func TestPaletteSizes(t *testing.T) {
	if Base.Size() != 10 {
		t.Errorf("base palette size = %d, expected 10", Base.Size())
	}
	if Extended.Size() != 16 {
		t.Errorf("extended palette size = %d, expected 16", Extended.Size())
	}
	if Base.MaxColor() != 9 || Extended.MaxColor() != 15 {
		t.Errorf("max colors = %d/%d, expected 9/15", Base.MaxColor(), Extended.MaxColor())
	}
}

func TestPaletteLookup(t *testing.T) {
	c, err := Base.Color(1)
	if err != nil {
		t.Fatalf("Color(1) failed: %v", err)
	}
	if c.Name != "blue" || c.Hex != "#0074D9" {
		t.Errorf("color 1 = %s %s, expected blue #0074D9", c.Name, c.Hex)
	}

	if _, err := Base.Color(10); err == nil {
		t.Error("Base.Color(10) should fail")
	}
	if _, err := Extended.Color(10); err != nil {
		t.Errorf("Extended.Color(10) failed: %v", err)
	}
	if _, err := Base.Color(-1); err == nil {
		t.Error("Color(-1) should fail")
	}
}

func TestExtendedSharesBasePrefix(t *testing.T) {
	for i := 0; i <= 9; i++ {
		b, _ := Base.Color(i)
		e, _ := Extended.Color(i)
		if b != e {
			t.Errorf("color %d differs between palettes: %v vs %v", i, b, e)
		}
	}
}

func TestPaletteHexFallback(t *testing.T) {
	if Base.Hex(5) != "#AAAAAA" {
		t.Errorf("Hex(5) = %s, expected #AAAAAA", Base.Hex(5))
	}
	if Base.Hex(99) != "#000000" {
		t.Errorf("Hex(99) = %s, expected black fallback", Base.Hex(99))
	}
}

func TestForLimits(t *testing.T) {
	if ForLimits(DefaultLimits()) != Base {
		t.Error("default limits should map to base palette")
	}
	if ForLimits(ExtendedLimits()) != Extended {
		t.Error("extended limits should map to extended palette")
	}
	if ForLimits(TaskLimits()) != Base {
		t.Error("task limits should map to base palette")
	}
}
