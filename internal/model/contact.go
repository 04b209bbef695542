package model

import "time"

// Contact is a message sent through the website's contact form.
type Contact struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Subject   string    `json:"subject" bson:"subject"`
	Message   string    `json:"message" bson:"message"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// ContactInput is the public contact form payload.
type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Contact statuses.
const (
	ContactNew       = "new"
	ContactRead      = "read"
	ContactResponded = "responded"
)

// ContactStatuses lists every accepted contact status, in no particular
// order of progression.
var ContactStatuses = []string{ContactNew, ContactRead, ContactResponded}
