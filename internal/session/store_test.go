package session

import (
	"testing"
	"time"
)

func TestStoreGetOrCreate(t *testing.T) {
	store := NewStore(0)

	sess := store.Create()
	if sess.ID == "" {
		t.Fatal("session id should not be empty")
	}

	if got := store.GetOrCreate(sess.ID); got != sess {
		t.Fatal("existing session should be returned")
	}

	fresh := store.GetOrCreate("no-such-id")
	if fresh.ID == "no-such-id" {
		t.Fatal("unknown ids must not be adopted")
	}
}

func TestStoreUpdateUnknownSession(t *testing.T) {
	store := NewStore(0)

	err := store.Update("missing", func(*Session) error { return nil })
	if err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestStoreSweepDropsIdleSessions(t *testing.T) {
	store := NewStore(10 * time.Millisecond)

	idle := store.Create()
	time.Sleep(20 * time.Millisecond)
	active := store.Create()

	if removed := store.Sweep(); removed != 1 {
		t.Fatalf("swept %d sessions, want 1", removed)
	}
	if store.Get(idle.ID) != nil {
		t.Fatal("idle session should be gone")
	}
	if store.Get(active.ID) == nil {
		t.Fatal("active session should survive")
	}
}
