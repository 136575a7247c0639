package tui

import "testing"

func TestSelection_ShowOpensWithoutSelection(t *testing.T) {
	var s Selection

	s = s.Show(5)
	if s.State() != SelectionOpen {
		t.Errorf("expected open state, got %v", s.State())
	}
}

func TestSelection_DownSelectsFirst(t *testing.T) {
	s := Selection{}.Show(3)

	s = s.Down()
	if s.State() != SelectionSelected || s.Index() != 0 {
		t.Errorf("expected selection at 0, got state %v index %d", s.State(), s.Index())
	}
}

func TestSelection_DownClampsAtEnd(t *testing.T) {
	s := Selection{}.Show(2).Down().Down()

	if s.Index() != 1 {
		t.Fatalf("expected index 1, got %d", s.Index())
	}

	// No wrap in the down direction.
	s = s.Down()
	if s.Index() != 1 {
		t.Errorf("expected index to stay at 1, got %d", s.Index())
	}
}

func TestSelection_UpWrapsFromFirst(t *testing.T) {
	s := Selection{}.Show(4).Down() // selected at 0

	s = s.Up()
	if s.Index() != 3 {
		t.Errorf("expected wrap to last index 3, got %d", s.Index())
	}
}

func TestSelection_UpFromNoSelectionLandsOnLast(t *testing.T) {
	s := Selection{}.Show(4)

	s = s.Up()
	if s.State() != SelectionSelected || s.Index() != 3 {
		t.Errorf("expected selection at last index, got state %v index %d", s.State(), s.Index())
	}
}

func TestSelection_UpDecrements(t *testing.T) {
	s := Selection{}.Show(3).Down().Down() // selected at 1

	s = s.Up()
	if s.Index() != 0 {
		t.Errorf("expected index 0, got %d", s.Index())
	}
}

func TestSelection_ActivateWithoutSelectionIsNoop(t *testing.T) {
	s := Selection{}.Show(3)

	next, _, ok := s.Activate()
	if ok {
		t.Error("expected activation to be a no-op without selection")
	}
	if next.State() != SelectionOpen {
		t.Errorf("expected state unchanged, got %v", next.State())
	}
}

func TestSelection_ActivateResolvesAndCloses(t *testing.T) {
	s := Selection{}.Show(3).Down().Down() // selected at 1

	next, row, ok := s.Activate()
	if !ok {
		t.Fatal("expected activation to resolve")
	}
	if row != 1 {
		t.Errorf("expected row 1, got %d", row)
	}
	if next.State() != SelectionClosed {
		t.Errorf("expected closed state after activation, got %v", next.State())
	}
}

func TestSelection_DismissCloses(t *testing.T) {
	s := Selection{}.Show(3).Down()

	s = s.Dismiss()
	if s.State() != SelectionClosed {
		t.Errorf("expected closed state, got %v", s.State())
	}
}

func TestSelection_EmptyListNavigationIsNoop(t *testing.T) {
	s := Selection{}.Show(0)

	if s.State() != SelectionOpen {
		t.Fatalf("expected zero-result list to still open, got %v", s.State())
	}
	if s = s.Down(); s.State() != SelectionOpen {
		t.Errorf("expected down on empty list to be a no-op, got %v", s.State())
	}
	if s = s.Up(); s.State() != SelectionOpen {
		t.Errorf("expected up on empty list to be a no-op, got %v", s.State())
	}
}

func TestSelection_ClosedNavigationIsNoop(t *testing.T) {
	var s Selection

	if s = s.Down(); s.State() != SelectionClosed {
		t.Errorf("expected down on closed list to be a no-op, got %v", s.State())
	}
	if s = s.Up(); s.State() != SelectionClosed {
		t.Errorf("expected up on closed list to be a no-op, got %v", s.State())
	}
}
