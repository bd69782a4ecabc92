package player

import (
	"context"
	"strings"
	"sync"

	"github.com/mediabar/mediabar/log"
)

// EventListener observes engine properties on the client's persistent connection
// and relays their changes.
type EventListener struct {
	client *Client
	events chan Event
	stopCh chan struct{}
	mu     sync.Mutex
	active bool
}

// NewEventListener creates a listener on an established client.
func NewEventListener(client *Client) *EventListener {
	return &EventListener{
		client: client,
		events: make(chan Event, eventBuffer),
		stopCh: make(chan struct{}),
	}
}

// Start registers the observers and begins relaying events.
// mpv only sends property-change events to the connection that observed the property.
func (el *EventListener) Start() error {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.active {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), readDeadline)
	defer cancel()

	for i, name := range ObservedProperties {
		if err := el.client.Observe(ctx, i+1, name); err != nil {
			return err
		}
	}

	el.active = true
	go el.relay()

	log.Infof("mpv event listener started (observing: %s)", strings.Join(ObservedProperties, ", "))
	return nil
}

// Events delivers relayed events. The channel is closed when the connection ends or Stop is called.
func (el *EventListener) Events() <-chan Event {
	return el.events
}

// Stop ends relaying. It is safe to call more than once.
func (el *EventListener) Stop() {
	el.mu.Lock()
	defer el.mu.Unlock()

	if !el.active {
		return
	}

	close(el.stopCh)
	el.active = false
}

func (el *EventListener) relay() {
	defer close(el.events)

	for {
		select {
		case <-el.stopCh:
			return
		case event, ok := <-el.client.Events():
			if !ok {
				log.Info("mpv event stream ended")
				return
			}

			if event.Kind != "property-change" {
				log.Debugf("mpv event: %s %s", event.Kind, event.Reason)
			}

			select {
			case el.events <- event:
			case <-el.stopCh:
				return
			}
		}
	}
}
