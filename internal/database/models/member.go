package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Location is the city and region a member (or group) belongs to
type Location struct {
	City  string `json:"city" gorm:"size:100" validate:"required,max=100"`
	State string `json:"state" gorm:"size:50" validate:"required,max=50"`
}

// Key returns the partition key for the location
func (l Location) Key() string {
	return l.City + "|" + l.State
}

// IsSet reports whether both city and state are present
func (l Location) IsSet() bool {
	return strings.TrimSpace(l.City) != "" && strings.TrimSpace(l.State) != ""
}

// Child is a child (or expected child) listed on a member profile
type Child struct {
	Name       string     `json:"name,omitempty" validate:"max=100"`
	BirthYear  int        `json:"birth_year" validate:"required,min=1900,max=2200"`
	BirthMonth *int       `json:"birth_month,omitempty" validate:"omitempty,min=1,max=12"`
	Gender     *string    `json:"gender,omitempty" validate:"omitempty,max=20"`
	Type       *ChildType `json:"type,omitempty"`
}

// Month returns the birth (or due) month, treating a missing month as January
func (c Child) Month() int {
	if c.BirthMonth == nil {
		return 1
	}
	return *c.BirthMonth
}

// Children is the ordered list of children stored as jsonb
type Children []Child

// Member represents an onboarded father who can be matched into a group
type Member struct {
	BaseModel
	Email     string          `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	FirstName string          `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName  string          `json:"last_name" gorm:"size:100" validate:"max=100"`
	Postcode  string          `json:"postcode" gorm:"size:20" validate:"max=20"`
	Location  Location        `json:"location" gorm:"embedded;embeddedPrefix:location_" validate:"required"`
	Children  Children        `json:"children" gorm:"type:jsonb;serializer:json" validate:"required,min=1,dive"`
	Eligible  bool            `json:"eligible" gorm:"not null;default:false;index"`
	GroupID   *uuid.UUID      `json:"group_id,omitempty" gorm:"type:uuid;index"`
	MatchedAt *time.Time      `json:"matched_at,omitempty"`
	Metadata  json.RawMessage `json:"metadata,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for Member
func (Member) TableName() string {
	return "members"
}

// DisplayName returns the name used in introductions
func (m *Member) DisplayName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// FirstChild returns the child used for life-stage derivation
func (m *Member) FirstChild() (Child, bool) {
	if len(m.Children) == 0 {
		return Child{}, false
	}
	return m.Children[0], true
}

// IsMatched reports whether the member currently belongs to a group
func (m *Member) IsMatched() bool {
	return m.GroupID != nil
}
