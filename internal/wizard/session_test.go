package wizard

import (
	"reflect"
	"testing"
	"time"
)

func TestSessionStoreGetSetDelete(t *testing.T) {
	st := NewSessionStore(time.Hour)

	if got := st.Get(1, KindProfile); got != nil {
		t.Fatalf("Get on empty store = %v", got)
	}

	sess := newSession(1, KindProfile, ActorContext{Username: "dana"})
	st.Set(sess)

	if got := st.Get(1, KindProfile); got != sess {
		t.Error("Get did not return the stored session")
	}
	if got := st.Get(1, KindSubmission); got != nil {
		t.Error("Get must key by kind, not actor alone")
	}
	if got := st.Get(2, KindProfile); got != nil {
		t.Error("Get must key by actor")
	}

	st.Delete(1, KindProfile)
	if got := st.Get(1, KindProfile); got != nil {
		t.Error("session survived Delete")
	}
}

func TestSessionStoreAny(t *testing.T) {
	st := NewSessionStore(time.Hour)

	if st.Any(1) != nil {
		t.Fatal("Any on empty store must be nil")
	}

	sess := newSession(1, KindGoal, ActorContext{})
	st.Set(sess)

	if got := st.Any(1); got != sess {
		t.Error("Any did not find the active session")
	}
	if st.Any(2) != nil {
		t.Error("Any leaked a session across actors")
	}
}

func TestSessionStoreEvictIdle(t *testing.T) {
	st := NewSessionStore(30 * time.Minute)

	stale := newSession(1, KindProfile, ActorContext{})
	fresh := newSession(2, KindProfile, ActorContext{})
	st.Set(stale)
	st.Set(fresh)
	stale.UpdatedAt = time.Now().Add(-time.Hour)

	st.evictIdle()

	if st.Get(1, KindProfile) != nil {
		t.Error("idle session survived eviction")
	}
	if st.Get(2, KindProfile) == nil {
		t.Error("fresh session was evicted")
	}
}

func TestSessionStoreTouchKeepsSessionAlive(t *testing.T) {
	st := NewSessionStore(30 * time.Minute)

	sess := newSession(1, KindProfile, ActorContext{})
	st.Set(sess)
	sess.UpdatedAt = time.Now().Add(-time.Hour)
	st.Touch(sess)

	st.evictIdle()
	if st.Get(1, KindProfile) == nil {
		t.Error("touched session was evicted")
	}
}

func TestSessionSelection(t *testing.T) {
	sess := newSession(1, KindProfile, ActorContext{})
	options := []string{"ai", "web", "data"}

	if got := sess.selectedList("interests", options); got != nil {
		t.Fatalf("selectedList on fresh session = %v", got)
	}

	set := sess.selection("interests")
	set["data"] = true
	set["ai"] = true

	// Stable option order, not toggle order.
	want := []string{"ai", "data"}
	if got := sess.selectedList("interests", options); !reflect.DeepEqual(got, want) {
		t.Errorf("selectedList = %v, want %v", got, want)
	}

	set["ai"] = false
	if got := sess.selectedList("interests", options); !reflect.DeepEqual(got, []string{"data"}) {
		t.Errorf("selectedList after toggle off = %v", got)
	}
}
