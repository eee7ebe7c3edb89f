package matching

import (
	"time"

	"dad-circles-backend/internal/database/models"
)

const (
	newbornMaxMonths = 6
	infantMaxMonths  = 18
	toddlerMaxMonths = 36
)

// IsFuture reports whether the child's birth (due) month lies after now's month
func IsFuture(child models.Child, now time.Time) bool {
	if child.BirthYear != now.Year() {
		return child.BirthYear > now.Year()
	}
	return child.Month() > int(now.Month())
}

// AgeInMonths returns the whole-month age of a born child relative to now
func AgeInMonths(child models.Child, now time.Time) int {
	return (now.Year()-child.BirthYear)*12 + (int(now.Month()) - child.Month())
}

// Classify derives the life stage of a child relative to now.
// The second result is false when the child has aged out of every stage.
func Classify(child models.Child, now time.Time) (models.LifeStage, bool) {
	if IsFuture(child, now) {
		return models.LifeStageExpecting, true
	}

	age := AgeInMonths(child, now)
	switch {
	case age <= newbornMaxMonths:
		return models.LifeStageNewborn, true
	case age <= infantMaxMonths:
		return models.LifeStageInfant, true
	case age <= toddlerMaxMonths:
		return models.LifeStageToddler, true
	}
	return "", false
}

// ClassifyMember classifies a member by their first child only.
// Members without children are never classified.
func ClassifyMember(member *models.Member, now time.Time) (models.LifeStage, bool) {
	child, ok := member.FirstChild()
	if !ok {
		return "", false
	}
	return Classify(child, now)
}
