package matching

import (
	"fmt"
	"time"

	"dad-circles-backend/internal/database/models"

	"github.com/google/uuid"
)

// ProposedGroup is a validated chunk ready for assignment
type ProposedGroup struct {
	Name      string
	Location  models.Location
	LifeStage models.LifeStage
	Members   []models.Member
	Gap       float64
}

// MemberIDs returns the ids in score order
func (g ProposedGroup) MemberIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(g.Members))
	for i, m := range g.Members {
		ids[i] = m.ID
	}
	return ids
}

// MemberEmails returns the contact addresses in score order
func (g ProposedGroup) MemberEmails() []string {
	emails := make([]string, len(g.Members))
	for i, m := range g.Members {
		emails[i] = m.Email
	}
	return emails
}

// FormGroups runs sort, chunk and gap validation for one partition.
// The second result is the number of partition members left unplaced.
func FormGroups(p Partition, now time.Time, s Settings) ([]ProposedGroup, int) {
	sorted := SortByProximity(p.Members, p.LifeStage, now)
	chunks := s.Policy(sorted, p.LifeStage, s)

	groups := make([]ProposedGroup, 0, len(chunks))
	placed := 0
	for _, chunk := range chunks {
		members := make([]models.Member, len(chunk))
		for i, sc := range chunk {
			members[i] = sc.Member
		}
		groups = append(groups, ProposedGroup{
			Name:      GroupName(p.Location, p.LifeStage),
			Location:  p.Location,
			LifeStage: p.LifeStage,
			Members:   members,
			Gap:       GapOf(chunk),
		})
		placed += len(chunk)
	}
	return groups, len(p.Members) - placed
}

// GroupName derives the human readable (non-unique) group name
func GroupName(loc models.Location, stage models.LifeStage) string {
	return fmt.Sprintf("%s %s Dads", loc.City, stage.Label())
}

// ChildSummary renders the one-line description of a member's child used in introductions
func ChildSummary(child models.Child, now time.Time) string {
	if IsFuture(child, now) {
		due := time.Date(child.BirthYear, time.Month(child.Month()), 1, 0, 0, 0, 0, time.UTC)
		if child.BirthMonth == nil {
			return fmt.Sprintf("Expecting, due %d", child.BirthYear)
		}
		return fmt.Sprintf("Expecting, due %s", due.Format("January 2006"))
	}

	noun := "Child"
	if child.Gender != nil {
		switch *child.Gender {
		case "male", "boy":
			noun = "Son"
		case "female", "girl":
			noun = "Daughter"
		}
	}

	age := AgeInMonths(child, now)
	switch {
	case age == 1:
		return noun + ", 1 month old"
	case age < 24:
		return fmt.Sprintf("%s, %d months old", noun, age)
	}
	return fmt.Sprintf("%s, %d years old", noun, age/12)
}
