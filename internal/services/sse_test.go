package services

import (
	"testing"
	"time"
)

func TestSSEHub_NewSSEHub(t *testing.T) {
	hub := NewSSEHub()
	if hub == nil {
		t.Fatal("NewSSEHub should not return nil")
	}
	if hub.clients == nil {
		t.Error("clients map should be initialized")
	}
	if hub.ClientCount() != 0 {
		t.Errorf("new hub should have 0 clients, got %d", hub.ClientCount())
	}
}

func TestSSEHub_Subscribe(t *testing.T) {
	hub := NewSSEHub()

	ch := hub.Subscribe("client1", 1)
	if ch == nil {
		t.Error("Subscribe should return a channel")
	}
	if hub.ClientCount() != 1 {
		t.Errorf("expected 1 client, got %d", hub.ClientCount())
	}

	ch2 := hub.Subscribe("client2", 2)
	if ch2 == nil {
		t.Error("Subscribe should return a channel")
	}
	if hub.ClientCount() != 2 {
		t.Errorf("expected 2 clients, got %d", hub.ClientCount())
	}
}

func TestSSEHub_Unsubscribe(t *testing.T) {
	hub := NewSSEHub()

	hub.Subscribe("client1", 1)
	hub.Subscribe("client2", 1)

	if hub.ClientCount() != 2 {
		t.Fatalf("expected 2 clients, got %d", hub.ClientCount())
	}

	hub.Unsubscribe("client1")
	if hub.ClientCount() != 1 {
		t.Errorf("expected 1 client after unsubscribe, got %d", hub.ClientCount())
	}

	hub.Unsubscribe("nonexistent")
	if hub.ClientCount() != 1 {
		t.Errorf("unsubscribing nonexistent should not affect count, got %d", hub.ClientCount())
	}

	hub.Unsubscribe("client2")
	if hub.ClientCount() != 0 {
		t.Errorf("expected 0 clients, got %d", hub.ClientCount())
	}
}

func TestSSEHub_PublishRoutesToTargetUser(t *testing.T) {
	hub := NewSSEHub()

	ch := hub.Subscribe("client1", 7)

	event := NotificationEvent{
		ID:     1,
		UserID: 7,
		Type:   "sow_submitted",
		Title:  "Statement of work submitted",
	}

	hub.Publish(event)

	select {
	case received := <-ch:
		if received.ID != event.ID {
			t.Errorf("ID = %d, expected %d", received.ID, event.ID)
		}
		if received.Type != "sow_submitted" {
			t.Errorf("Type = %q, expected %q", received.Type, "sow_submitted")
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("timed out waiting for event")
	}
}

func TestSSEHub_PublishSkipsOtherUsers(t *testing.T) {
	hub := NewSSEHub()

	mine := hub.Subscribe("client1", 7)
	other := hub.Subscribe("client2", 8)

	hub.Publish(NotificationEvent{ID: 1, UserID: 7, Type: "bid_placed"})

	select {
	case <-mine:
	case <-time.After(100 * time.Millisecond):
		t.Error("target user should receive the event")
	}

	select {
	case received := <-other:
		t.Errorf("other user should not receive the event, got %+v", received)
	default:
	}
}

func TestSSEHub_PublishMultipleConnectionsSameUser(t *testing.T) {
	hub := NewSSEHub()

	ch1 := hub.Subscribe("tab1", 7)
	ch2 := hub.Subscribe("tab2", 7)

	hub.Publish(NotificationEvent{ID: 1, UserID: 7, Type: "bid_accepted"})

	for i, ch := range []<-chan NotificationEvent{ch1, ch2} {
		select {
		case received := <-ch:
			if received.ID != 1 {
				t.Errorf("connection%d: ID = %d, expected 1", i+1, received.ID)
			}
		case <-time.After(100 * time.Millisecond):
			t.Errorf("connection%d: timed out waiting for event", i+1)
		}
	}
}

func TestSSEHub_NonBlockingPublish(t *testing.T) {
	hub := NewSSEHub()

	hub.Subscribe("slow_client", 7)

	for i := 0; i < 200; i++ {
		hub.Publish(NotificationEvent{ID: uint(i), UserID: 7})
	}
}

func TestGetSSEHub_Singleton(t *testing.T) {
	hub1 := GetSSEHub()
	hub2 := GetSSEHub()

	if hub1 != hub2 {
		t.Error("GetSSEHub should return the same instance")
	}
}
