package model

import "time"

// Review is a customer review. New reviews are published immediately
// (Approved is true) and can be hidden later by moderation.
type Review struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Rating    int       `json:"rating" bson:"rating"`
	Comment   string    `json:"comment" bson:"comment"`
	Email     string    `json:"email,omitempty" bson:"email,omitempty"`
	Approved  bool      `json:"approved" bson:"approved"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// ReviewInput is the public creation payload. The rating range is checked
// here, at the request boundary, and nowhere else.
type ReviewInput struct {
	Name    string `json:"name" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
}
