package services

import (
	"encoding/json"
	"log"
	"time"
)

// EventsExchange is the topic exchange domain events are published to.
const EventsExchange = "library"

// Routing keys of the events published after successful mutations.
const (
	EventBookCreated   = "book.created"
	EventBookUpdated   = "book.updated"
	EventBookDeleted   = "book.deleted"
	EventUserCreated   = "user.created"
	EventUserUpdated   = "user.updated"
	EventUserDeleted   = "user.deleted"
	EventBorrowCreated = "borrow.created"
)

// EventPublisher delivers a message to a broker exchange.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// publishEvent is best effort: failures are logged and never reach the caller.
func publishEvent(pub EventPublisher, routingKey string, data map[string]any) {
	if pub == nil {
		return
	}
	body, err := json.Marshal(map[string]any{
		"type": routingKey,
		"time": time.Now().UTC().Format(time.RFC3339),
		"data": data,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := pub.Publish(EventsExchange, routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
