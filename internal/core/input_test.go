package core

import "testing"

func TestInputFrameCoalesces(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFlap)
	f.Set(ActionFlap)

	if !f.Has(ActionFlap) {
		t.Error("frame should have Flap")
	}
	if len(f.Actions) != 1 {
		t.Errorf("repeated Set should coalesce, got %d actions", len(f.Actions))
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionSpawn.String() != "Spawn" || Action(42).String() != "Unknown" {
		t.Error("unexpected Action names")
	}
}
