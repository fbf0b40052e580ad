package container

import "testing"

// quadLayout builds a 2x2 grid:
//
//	a b
//	c d
func quadLayout(t *testing.T, m *Manager[string]) {
	t.Helper()
	for _, name := range []string{"a", "b", "c", "d"} {
		addPane(t, m, name)
	}
	setLayout(t, m, VSplit(
		Weighted[string](HSplit(
			Weighted[string](Leaf("a"), 1),
			Weighted[string](Leaf("b"), 1),
		), 1),
		Weighted[string](HSplit(
			Weighted[string](Leaf("c"), 1),
			Weighted[string](Leaf("d"), 1),
		), 1),
	))
}

func expectActive(t *testing.T, m *Manager[string], want string) {
	t.Helper()
	got, ok := m.Active()
	if !ok || got != want {
		t.Fatalf("expected active pane %q, got %q (ok=%v)", want, got, ok)
	}
}

func TestManagerFocusGrid(t *testing.T) {
	m := NewManager[string]()
	quadLayout(t, m)
	setActive(t, m, "a")
	drawManager(m, 20, 10)

	if !m.FocusRight() {
		t.Fatalf("FocusRight should find the pane on the right")
	}
	expectActive(t, m, "b")

	if !m.FocusDown() {
		t.Fatalf("FocusDown should find the pane below")
	}
	expectActive(t, m, "d")

	if !m.FocusLeft() {
		t.Fatalf("FocusLeft should find the pane on the left")
	}
	expectActive(t, m, "c")

	if !m.FocusUp() {
		t.Fatalf("FocusUp should find the pane above")
	}
	expectActive(t, m, "a")
}

func TestManagerFocusStopsAtEdges(t *testing.T) {
	m := NewManager[string]()
	quadLayout(t, m)
	setActive(t, m, "a")
	drawManager(m, 20, 10)

	if m.FocusUp() {
		t.Errorf("no pane above the top row")
	}
	if m.FocusLeft() {
		t.Errorf("no pane left of the first column")
	}
	expectActive(t, m, "a")
}

func TestManagerFocusPrefersLargestOverlap(t *testing.T) {
	m := NewManager[string]()
	addPane(t, m, "a")
	addPane(t, m, "b")
	addPane(t, m, "c")
	setLayout(t, m, HSplit(
		Weighted[string](Leaf("a"), 1),
		Weighted[string](VSplit(
			Weighted[string](Leaf("b"), 1),
			Weighted[string](Leaf("c"), 4),
		), 1),
	))
	setActive(t, m, "a")
	drawManager(m, 20, 10)

	// b covers 2 rows of the shared edge, c covers 8.
	if !m.FocusRight() {
		t.Fatalf("FocusRight should find a neighbor")
	}
	expectActive(t, m, "c")
}

func TestManagerFocusNeedsGeometry(t *testing.T) {
	m := NewManager[string]()
	quadLayout(t, m)
	setActive(t, m, "a")

	if m.FocusRight() {
		t.Errorf("focus cannot move before the first draw")
	}
}

func TestManagerFocusCrossesSeparatorGap(t *testing.T) {
	m := NewManager[string]()
	addPane(t, m, "a")
	addPane(t, m, "b")
	setLayout(t, m, HSplit(
		Weighted[string](Leaf("a"), 1),
		Weighted[string](Leaf("b"), 1),
	))
	m.SetSeparators(SeparatorsLines)
	setActive(t, m, "a")
	drawManager(m, 11, 3)

	if !m.FocusRight() {
		t.Fatalf("panes separated by a line are still neighbors")
	}
	expectActive(t, m, "b")
}

func TestManagerNavigatorAdapter(t *testing.T) {
	m := NewManager[string]()
	quadLayout(t, m)
	setActive(t, m, "a")
	drawManager(m, 20, 10)

	nav := m.Navigator()
	if !nav.MoveRight() {
		t.Fatalf("MoveRight should move the focus")
	}
	expectActive(t, m, "b")
	if nav.MoveUp() {
		t.Errorf("MoveUp at the top row should fail")
	}
}
