package input

import "testing"

func TestLatchPressAndTake(t *testing.T) {
	var l Latch
	l.Press(ActionRotateLeft)
	l.Press(ActionFire)

	snap := l.Take()
	if !snap.RotateLeft || !snap.Fire {
		t.Errorf("Snapshot = %+v, want rotate-left and fire", snap)
	}
	if snap.RotateRight || snap.Quit {
		t.Errorf("Snapshot = %+v, unexpected actions set", snap)
	}
}

func TestLatchClearsBetweenTicks(t *testing.T) {
	var l Latch
	l.Press(ActionFire)
	l.Take()

	snap := l.Take()
	if snap.Fire {
		t.Error("Fire must not survive into the next tick")
	}
}

func TestLatchQuitIsSticky(t *testing.T) {
	var l Latch
	l.Press(ActionQuit)
	l.Take()

	snap := l.Take()
	if !snap.Quit {
		t.Error("Quit must remain set until the session ends")
	}
}

func TestLatchIgnoresNone(t *testing.T) {
	var l Latch
	l.Press(ActionNone)
	if snap := l.Take(); snap != (Snapshot{}) {
		t.Errorf("Snapshot = %+v, want zero", snap)
	}
}
