package core

import "testing"

func TestNumberColor(t *testing.T) {
	if NumberColor(1) != ColorBlue {
		t.Errorf("NumberColor(1) = %v, expected blue", NumberColor(1))
	}
	if NumberColor(3) != ColorRed {
		t.Errorf("NumberColor(3) = %v, expected red", NumberColor(3))
	}
	if NumberColor(8) != ColorGray {
		t.Errorf("NumberColor(8) = %v, expected gray", NumberColor(8))
	}
	if NumberColor(0) != ColorDefault || NumberColor(9) != ColorDefault {
		t.Error("counts outside 1..8 should get the default color")
	}
}
