package models

import (
	"time"

	"github.com/google/uuid"
)

// Group represents a Dad Circle: a small set of members sharing a location and life stage
type Group struct {
	BaseModel
	Name               string      `json:"name" gorm:"not null;size:200"`
	Location           Location    `json:"location" gorm:"embedded;embeddedPrefix:location_"`
	LifeStage          LifeStage   `json:"life_stage" gorm:"type:varchar(20);not null;index"`
	MemberIDs          []uuid.UUID `json:"member_ids" gorm:"type:jsonb;serializer:json;not null"`
	MemberEmails       []string    `json:"member_emails" gorm:"type:jsonb;serializer:json"`
	Status             GroupStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	EmailedMemberIDs   []uuid.UUID `json:"emailed_member_ids" gorm:"type:jsonb;serializer:json"`
	IntroductionSentAt *time.Time  `json:"introduction_sent_at,omitempty"`
}

// TableName returns the table name for Group
func (Group) TableName() string {
	return "groups"
}

// HasMember reports whether id is one of the group's members
func (g *Group) HasMember(id uuid.UUID) bool {
	for _, m := range g.MemberIDs {
		if m == id {
			return true
		}
	}
	return false
}
