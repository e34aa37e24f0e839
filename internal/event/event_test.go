// internal/event/event_test.go
package event

import "testing"

type countingListener struct {
	got []Event
}

func (l *countingListener) OnEvent(e Event) {
	l.got = append(l.got, e)
}

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	a := &countingListener{}
	b := &countingListener{}
	d.Subscribe(GameOver, a)
	d.Subscribe(GameOver, b)
	d.Subscribe(NewGameStarted, a)

	d.Dispatch(Event{Type: GameOver})
	if len(a.got) != 1 || len(b.got) != 1 {
		t.Fatalf("got %d/%d events, want 1/1", len(a.got), len(b.got))
	}

	d.Dispatch(Event{Type: NewGameStarted})
	if len(a.got) != 2 {
		t.Errorf("got %d events, want 2", len(a.got))
	}
	if len(b.got) != 1 {
		t.Errorf("listener received an event type it never subscribed to")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	d := NewDispatcher()
	l := &countingListener{}
	d.Subscribe(GameOver, l)
	d.Unsubscribe(GameOver, l)

	d.Dispatch(Event{Type: GameOver})
	if len(l.got) != 0 {
		t.Errorf("got %d events after unsubscribe, want 0", len(l.got))
	}
}

func TestDispatchWithoutSubscribers(t *testing.T) {
	d := NewDispatcher()
	d.Dispatch(Event{Type: GameOver})
}
