// Package queue defines the notification events sent to restaurant staff
// over RabbitMQ, and the publisher and consumer that move them.
package queue

// Event types emitted by the resource managers.
const (
	ReservationCreated       = "reservation.created"
	ReservationStatusChanged = "reservation.status_changed"
	ContactReceived          = "contact.received"
	ReviewPosted             = "review.posted"
)

// NotificationsQueue is the durable queue every event is routed to.
const NotificationsQueue = "restaurant.notifications"

// Event carries enough information for staff to act on a new reservation,
// message or review without querying the store.
type Event struct {
	Type       string            `json:"type"`
	RecordID   string            `json:"record_id"`
	Summary    string            `json:"summary"`
	Fields     map[string]string `json:"fields,omitempty"`
	OccurredAt string            `json:"occurred_at"`
}
