package tray

import "testing"

func TestNewMenuCallbacks(t *testing.T) {
	var opened, cleared, quit int
	menu := NewMenu(Callbacks{
		OnOpen:  func() { opened++ },
		OnClear: func() { cleared++ },
		OnQuit:  func() { quit++ },
	})

	if len(menu.Items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(menu.Items))
	}
	for _, item := range menu.Items {
		if item.Action != nil {
			item.Action()
		}
	}
	if opened != 1 || cleared != 1 || quit != 1 {
		t.Errorf("expected each callback once, got open=%d clear=%d quit=%d", opened, cleared, quit)
	}
}

func TestNewMenuNilCallbacks(t *testing.T) {
	menu := NewMenu(Callbacks{})
	for _, item := range menu.Items {
		if item.Action != nil {
			item.Action()
		}
	}
}
