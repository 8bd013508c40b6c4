package realtime

import (
	"log/slog"
	"testing"

	"github.com/google/uuid"
)

func drain(ch chan Event) []Event {
	var events []Event
	for {
		select {
		case e, ok := <-ch:
			if !ok {
				return events
			}
			events = append(events, e)
		default:
			return events
		}
	}
}

func TestHubFanOut(t *testing.T) {
	hub := New(slog.Default())

	a := hub.subscribe(nil, uuid.New())
	b := hub.subscribe(nil, uuid.New())

	event := Event{Table: TableDocuments, Action: ActionInsert, ID: "DOC-0001"}
	hub.Publish(event)

	for name, sub := range map[string]*subscriber{"a": a, "b": b} {
		events := drain(sub.send)
		if len(events) != 1 || events[0].ID != "DOC-0001" {
			t.Errorf("subscriber %s: expected one DOC-0001 event, got %v", name, events)
		}
	}
}

func TestHubTableFiltering(t *testing.T) {
	hub := New(slog.Default())

	docs := hub.subscribe([]string{TableDocuments}, uuid.New())
	cases := hub.subscribe([]string{TableProcedimenti}, uuid.New())

	hub.Publish(Event{Table: TableDocuments, Action: ActionUpdate, ID: "DOC-0002"})

	if events := drain(docs.send); len(events) != 1 {
		t.Errorf("documents subscriber: expected 1 event, got %d", len(events))
	}
	if events := drain(cases.send); len(events) != 0 {
		t.Errorf("cases subscriber: expected no events, got %d", len(events))
	}
}

func TestHubPersonalEvents(t *testing.T) {
	hub := New(slog.Default())

	alice := uuid.New()
	bob := uuid.New()

	aliceSub := hub.subscribe([]string{TableNotifications}, alice)
	bobSub := hub.subscribe([]string{TableNotifications}, bob)

	hub.Publish(Event{
		Table:  TableNotifications,
		Action: ActionInsert,
		ID:     uuid.NewString(),
		UserID: &alice,
	})

	if events := drain(aliceSub.send); len(events) != 1 {
		t.Errorf("recipient: expected 1 event, got %d", len(events))
	}
	if events := drain(bobSub.send); len(events) != 0 {
		t.Errorf("other subscriber: expected no events, got %d", len(events))
	}
}

func TestHubDropsSlowSubscriber(t *testing.T) {
	hub := New(slog.Default())

	slow := hub.subscribe(nil, uuid.New())

	for i := 0; i <= sendBuffer; i++ {
		hub.Publish(Event{Table: TableDocuments, Action: ActionInsert, ID: uuid.NewString()})
	}

	hub.mu.Lock()
	_, registered := hub.subscribers[slow]
	hub.mu.Unlock()

	if registered {
		t.Error("expected slow subscriber to be dropped")
	}

	// Channel must be closed so the connection goroutine exits.
	events := drain(slow.send)
	if len(events) != sendBuffer {
		t.Errorf("expected %d buffered events, got %d", sendBuffer, len(events))
	}
	if _, ok := <-slow.send; ok {
		t.Error("expected send channel to be closed")
	}
}

func TestHubClose(t *testing.T) {
	hub := New(slog.Default())

	sub := hub.subscribe(nil, uuid.New())
	hub.close()

	if _, ok := <-sub.send; ok {
		t.Error("expected send channel closed after shutdown")
	}

	// Publishing after close must not panic.
	hub.Publish(Event{Table: TableDocuments, Action: ActionDelete, ID: "DOC-0003"})

	late := hub.subscribe(nil, uuid.New())
	if _, ok := <-late.send; ok {
		t.Error("expected late subscription to be closed immediately")
	}
}

func TestParseTables(t *testing.T) {
	tests := []struct {
		raw      string
		expected int
	}{
		{"", 0},
		{"documents", 1},
		{"documents,procedimenti", 2},
		{" documents , ,procedimenti ", 2},
	}

	for _, tc := range tests {
		if got := parseTables(tc.raw); len(got) != tc.expected {
			t.Errorf("parseTables(%q) = %v, expected %d entries", tc.raw, got, tc.expected)
		}
	}
}
