// Package notification delivers group introductions to members.
package notification

import (
	"context"

	"dad-circles-backend/internal/database/models"

	"github.com/google/uuid"
)

// Introduction is everything needed to introduce a newly approved group
type Introduction struct {
	GroupID    uuid.UUID
	GroupName  string
	Location   models.Location
	LifeStage  models.LifeStage
	Recipients []Recipient
}

// Recipient is one member of the group being introduced
type Recipient struct {
	MemberID     uuid.UUID `json:"member_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	ChildSummary string    `json:"child_summary"`
}

// DeliveryFailure records why one recipient was not reached
type DeliveryFailure struct {
	MemberID uuid.UUID `json:"member_id"`
	Email    string    `json:"email"`
	Error    string    `json:"error"`
}

// DeliveryReport lists which recipients accepted the introduction
type DeliveryReport struct {
	Delivered []uuid.UUID       `json:"delivered"`
	Failed    []DeliveryFailure `json:"failed"`
}

// Email is a rendered message ready for a Sender
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Sender transports a single email
type Sender interface {
	Send(ctx context.Context, email Email) error
}
