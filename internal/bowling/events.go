package bowling

import "time"

// EventType represents a match event type with type safety
type EventType string

// EventType constants for match domain events
const (
	EventTypePlayerAdded    EventType = "player_added"
	EventTypeLeadersChanged EventType = "leaders_changed"
	EventTypeGameFinished   EventType = "game_finished"
	EventTypeMatchCleared   EventType = "match_cleared"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event represents anything that changes a match in a way presentation code
// cares about
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// PlayerAddedEvent is published when a player joins the match
type PlayerAddedEvent struct {
	MatchID   string
	Player    string
	Seat      int
	timestamp time.Time
}

func (e PlayerAddedEvent) EventType() EventType { return EventTypePlayerAdded }
func (e PlayerAddedEvent) Timestamp() time.Time { return e.timestamp }

// LeadersChangedEvent is published when the set of leaders changes
type LeadersChangedEvent struct {
	MatchID   string
	Leaders   []string
	Score     int
	timestamp time.Time
}

func (e LeadersChangedEvent) EventType() EventType { return EventTypeLeadersChanged }
func (e LeadersChangedEvent) Timestamp() time.Time { return e.timestamp }

// GameFinishedEvent is published after a ball that leaves the bowler's game
// finished. MatchFinished is set when that was the last open game.
type GameFinishedEvent struct {
	MatchID       string
	Player        string
	Total         int
	MatchFinished bool
	timestamp     time.Time
}

func (e GameFinishedEvent) EventType() EventType { return EventTypeGameFinished }
func (e GameFinishedEvent) Timestamp() time.Time { return e.timestamp }

// MatchClearedEvent is published when a match is cleared to start over
type MatchClearedEvent struct {
	PreviousID string
	MatchID    string
	timestamp  time.Time
}

func (e MatchClearedEvent) EventType() EventType { return EventTypeMatchCleared }
func (e MatchClearedEvent) Timestamp() time.Time { return e.timestamp }

// Listener is a payload-free change callback. Listeners re-query whatever
// state they display.
type Listener func()

// EventSubscriber receives typed match events
type EventSubscriber interface {
	OnEvent(event Event)
}

// SubscriberFunc adapts a function to EventSubscriber
type SubscriberFunc func(Event)

// OnEvent calls f(event)
func (f SubscriberFunc) OnEvent(event Event) { f(event) }

// listeners is a list of payload-free callbacks
type listeners []Listener

func (ls listeners) notify() {
	for _, l := range ls {
		l()
	}
}

// eventBus fans events out to typed subscribers and payload-free listeners,
// synchronously and in subscription order
type eventBus struct {
	subscribers []EventSubscriber
	listeners   listeners
}

func (bus *eventBus) subscribe(s EventSubscriber) {
	bus.subscribers = append(bus.subscribers, s)
}

func (bus *eventBus) listen(l Listener) {
	bus.listeners = append(bus.listeners, l)
}

func (bus *eventBus) publish(event Event) {
	for _, s := range bus.subscribers {
		s.OnEvent(event)
	}
	bus.listeners.notify()
}
