package event

import "testing"

type recorder struct {
	got []EventType
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e.Type) }

func TestDispatcher(t *testing.T) {
	d := NewDispatcher()
	kills := &recorder{}
	all := &recorder{}
	d.Subscribe(EnemyKilled, kills)
	d.SubscribeAll(all)

	d.Dispatch(Event{Type: EnemyKilled})
	d.Dispatch(Event{Type: WaveStarted})

	if len(kills.got) != 1 || kills.got[0] != EnemyKilled {
		t.Errorf("typed listener got %v", kills.got)
	}
	if len(all.got) != 2 {
		t.Errorf("catch-all listener got %v", all.got)
	}

	d.Unsubscribe(EnemyKilled, kills)
	d.Dispatch(Event{Type: EnemyKilled})
	if len(kills.got) != 1 {
		t.Errorf("unsubscribed listener still called: %v", kills.got)
	}
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(GameOver, ListenerFunc(func(Event) { calls++ }))
	d.Dispatch(Event{Type: GameOver})
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}
