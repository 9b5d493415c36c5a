package ui

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDocument_LockScrollRestoresPriorState(t *testing.T) {
	d := NewDocument()
	outer := d.LockScroll()
	inner := d.LockScroll()
	if !d.ScrollLocked() {
		t.Fatal("expected locked")
	}
	inner()
	if !d.ScrollLocked() {
		t.Error("inner restore should leave the outer lock in place")
	}
	outer()
	if d.ScrollLocked() {
		t.Error("outer restore should unlock")
	}
}

func TestDocument_LockScrollReleasedInAnyOrder(t *testing.T) {
	d := NewDocument()
	first := d.LockScroll()
	second := d.LockScroll()

	first()
	if !d.ScrollLocked() {
		t.Error("releasing the first lock should leave the second in place")
	}
	first()
	if !d.ScrollLocked() {
		t.Error("a repeated release must not drop another lock")
	}
	second()
	if d.ScrollLocked() {
		t.Error("all locks released, page should scroll")
	}
}

func TestDocument_KeyListeners(t *testing.T) {
	d := NewDocument()
	var order []string
	removeA := d.AddKeyListener(func(tea.KeyMsg) (bool, tea.Cmd) {
		order = append(order, "a")
		return true, nil
	})
	removeB := d.AddKeyListener(func(tea.KeyMsg) (bool, tea.Cmd) {
		order = append(order, "b")
		return false, nil
	})
	if d.ListenerCount() != 2 {
		t.Fatalf("ListenerCount = %d, want 2", d.ListenerCount())
	}

	handled, _ := d.DispatchKey(keyMsg("x"))
	if !handled {
		t.Error("expected a to handle the key")
	}
	if !reflect.DeepEqual(order, []string{"b", "a"}) {
		t.Errorf("dispatch order = %v, want newest first", order)
	}

	removeB()
	removeB()
	if d.ListenerCount() != 1 {
		t.Errorf("double remove should be harmless, count = %d", d.ListenerCount())
	}
	removeA()
	if handled, _ := d.DispatchKey(keyMsg("x")); handled {
		t.Error("no listeners left to handle the key")
	}
}

func TestDocument_ListenerMayRemoveItself(t *testing.T) {
	d := NewDocument()
	var calls int
	d.AddKeyListener(func(tea.KeyMsg) (bool, tea.Cmd) {
		calls++
		return false, nil
	})
	var remove func()
	remove = d.AddKeyListener(func(tea.KeyMsg) (bool, tea.Cmd) {
		remove()
		return false, nil
	})

	d.DispatchKey(keyMsg("x"))
	if calls != 1 {
		t.Errorf("older listener should still see the key, calls = %d", calls)
	}
	if d.ListenerCount() != 1 {
		t.Errorf("ListenerCount = %d, want 1", d.ListenerCount())
	}
}

func TestScope_ReleasesInReverseOnce(t *testing.T) {
	var order []int
	s := &Scope{}
	s.Defer(func() { order = append(order, 1) })
	s.Defer(nil)
	s.Defer(func() { order = append(order, 2) })

	s.Release()
	s.Release()
	if !reflect.DeepEqual(order, []int{2, 1}) {
		t.Errorf("release order = %v, want [2 1]", order)
	}
	if !s.Released() {
		t.Error("expected Released")
	}

	s.Defer(func() { order = append(order, 3) })
	if !reflect.DeepEqual(order, []int{2, 1, 3}) {
		t.Errorf("defer after release should run at once, got %v", order)
	}
}
