package models

// LifeStage classifies a member's first child by age or due date
type LifeStage string

const (
	LifeStageExpecting LifeStage = "expecting"
	LifeStageNewborn   LifeStage = "newborn"
	LifeStageInfant    LifeStage = "infant"
	LifeStageToddler   LifeStage = "toddler"
)

// AllLifeStages lists the stages in developmental order
var AllLifeStages = []LifeStage{
	LifeStageExpecting,
	LifeStageNewborn,
	LifeStageInfant,
	LifeStageToddler,
}

// GroupStatus is the lifecycle state of a group
type GroupStatus string

const (
	GroupStatusPending  GroupStatus = "pending"
	GroupStatusActive   GroupStatus = "active"
	GroupStatusInactive GroupStatus = "inactive"
)

// ChildType is the legacy expecting/existing tag captured during onboarding.
// Classification never relies on it.
type ChildType string

const (
	ChildTypeExpecting ChildType = "expecting"
	ChildTypeExisting  ChildType = "existing"
)

// IsValid checks if the LifeStage is valid
func (s LifeStage) IsValid() bool {
	switch s {
	case LifeStageExpecting, LifeStageNewborn, LifeStageInfant, LifeStageToddler:
		return true
	}
	return false
}

// Label returns the human readable stage name
func (s LifeStage) Label() string {
	switch s {
	case LifeStageExpecting:
		return "Expecting"
	case LifeStageNewborn:
		return "Newborn"
	case LifeStageInfant:
		return "Infant"
	case LifeStageToddler:
		return "Toddler"
	}
	return string(s)
}

// IsValid checks if the GroupStatus is valid
func (s GroupStatus) IsValid() bool {
	switch s {
	case GroupStatusPending, GroupStatusActive, GroupStatusInactive:
		return true
	}
	return false
}

// IsValid checks if the ChildType is valid
func (t ChildType) IsValid() bool {
	switch t {
	case ChildTypeExpecting, ChildTypeExisting:
		return true
	}
	return false
}
