package components

import (
	"testing"

	"github.com/pthm-cable/plinko/body"
)

func TestStyleLightRestore(t *testing.T) {
	s := NewStyle(body.Style{Fill: "#cccccc", LineWidth: 1, Opacity: 1})
	s.Light("#ff0000")
	if s.Fill != "#ff0000" || !s.Lit {
		t.Errorf("unexpected lit style %+v", s)
	}
	s.Restore("")
	if s.Fill != "#cccccc" || s.Lit {
		t.Errorf("restore should return to the spawn fill, got %+v", s)
	}
	s.Restore("#ffa500")
	if s.Fill != "#ffa500" || s.Base != "#cccccc" {
		t.Errorf("unexpected restored style %+v", s)
	}
}
