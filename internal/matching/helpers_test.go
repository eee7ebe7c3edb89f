package matching

import (
	"fmt"
	"time"

	"dad-circles-backend/internal/database/models"

	"github.com/google/uuid"
)

// referenceNow is the fixed "today" used across the matching tests
var referenceNow = time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func childAged(months int) models.Child {
	born := referenceNow.AddDate(0, -months, 0)
	return models.Child{BirthYear: born.Year(), BirthMonth: intPtr(int(born.Month()))}
}

func childDue(year int, month time.Month) models.Child {
	return models.Child{BirthYear: year, BirthMonth: intPtr(int(month))}
}

func newMember(city, state string, children ...models.Child) models.Member {
	id := uuid.New()
	return models.Member{
		BaseModel: models.BaseModel{ID: id},
		Email:     fmt.Sprintf("dad-%s@example.com", id.String()[:8]),
		FirstName: "Dad",
		Location:  models.Location{City: city, State: state},
		Children:  children,
		Eligible:  true,
	}
}

func membersAged(city, state string, ages ...int) []models.Member {
	out := make([]models.Member, len(ages))
	for i, age := range ages {
		out[i] = newMember(city, state, childAged(age))
	}
	return out
}

func scoredOf(scores ...float64) []Scored {
	out := make([]Scored, len(scores))
	for i, s := range scores {
		out[i] = Scored{Member: newMember("Austin", "TX", childAged(int(s))), Score: s}
	}
	return out
}
