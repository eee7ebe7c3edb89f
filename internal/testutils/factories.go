package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"dad-circles-backend/internal/database/models"

	"github.com/google/uuid"
)

var emailSeq atomic.Int64

// MemberFactory provides methods to create test Member data
type MemberFactory struct {
	// Now anchors child ages; defaults to time.Now()
	Now time.Time
}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

func (f *MemberFactory) now() time.Time {
	if f.Now.IsZero() {
		return time.Now().UTC()
	}
	return f.Now
}

// Create creates an eligible, unmatched member in Austin, TX with a 3 month old child
func (f *MemberFactory) Create() *models.Member {
	id := uuid.New()
	seq := emailSeq.Add(1)

	return &models.Member{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:     fmt.Sprintf("dad%d-%s@test.com", seq, id.String()[:6]),
		FirstName: "Sam",
		LastName:  "Taylor",
		Postcode:  "78701",
		Location:  models.Location{City: "Austin", State: "TX"},
		Children:  models.Children{f.ChildAged(3)},
		Eligible:  true,
	}
}

// ChildAged returns a born child that is months old relative to the factory clock
func (f *MemberFactory) ChildAged(months int) models.Child {
	year, month := shiftMonths(f.now(), -months)
	return models.Child{BirthYear: year, BirthMonth: &month}
}

// ChildDueIn returns an expected child due months from the factory clock
func (f *MemberFactory) ChildDueIn(months int) models.Child {
	year, month := shiftMonths(f.now(), months)
	kind := models.ChildTypeExpecting
	return models.Child{BirthYear: year, BirthMonth: &month, Type: &kind}
}

// shiftMonths moves by calendar months without AddDate's end-of-month overflow
func shiftMonths(t time.Time, months int) (int, int) {
	total := t.Year()*12 + int(t.Month()) - 1 + months
	return total / 12, total%12 + 1
}

// WithEmail sets a custom email for the member
func (f *MemberFactory) WithEmail(email string) *models.Member {
	member := f.Create()
	member.Email = email
	return member
}

// WithLocation places the member in another city and state
func (f *MemberFactory) WithLocation(city, state string) *models.Member {
	member := f.Create()
	member.Location = models.Location{City: city, State: state}
	return member
}

// WithChildAged replaces the member's child with one of the given age in months
func (f *MemberFactory) WithChildAged(months int) *models.Member {
	member := f.Create()
	member.Children = models.Children{f.ChildAged(months)}
	return member
}

// Pool creates n members in one location whose children are aged as listed, cycling ages
func (f *MemberFactory) Pool(city, state string, n int, ages ...int) []*models.Member {
	if len(ages) == 0 {
		ages = []int{3}
	}
	members := make([]*models.Member, n)
	for i := range members {
		m := f.WithLocation(city, state)
		m.Children = models.Children{f.ChildAged(ages[i%len(ages)])}
		// keep created_at strictly increasing so pool order is deterministic
		m.CreatedAt = m.CreatedAt.Add(time.Duration(i) * time.Millisecond)
		members[i] = m
	}
	return members
}

// GroupFactory provides methods to create test Group data
type GroupFactory struct{}

// NewGroupFactory creates a new GroupFactory
func NewGroupFactory() *GroupFactory {
	return &GroupFactory{}
}

// Create creates a pending newborn group in Austin, TX without members
func (f *GroupFactory) Create() *models.Group {
	return &models.Group{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:             "Austin Newborn Dads",
		Location:         models.Location{City: "Austin", State: "TX"},
		LifeStage:        models.LifeStageNewborn,
		MemberIDs:        []uuid.UUID{},
		MemberEmails:     []string{},
		Status:           models.GroupStatusPending,
		EmailedMemberIDs: []uuid.UUID{},
	}
}

// ForMembers creates a pending group listing the given members
func (f *GroupFactory) ForMembers(members ...*models.Member) *models.Group {
	group := f.Create()
	for _, m := range members {
		group.MemberIDs = append(group.MemberIDs, m.ID)
		group.MemberEmails = append(group.MemberEmails, m.Email)
	}
	if len(members) > 0 {
		group.Location = members[0].Location
	}
	return group
}

// WithStatus sets a custom status for the group
func (f *GroupFactory) WithStatus(status models.GroupStatus) *models.Group {
	group := f.Create()
	group.Status = status
	return group
}

// FactorySet provides access to all factories
type FactorySet struct {
	Member *MemberFactory
	Group  *GroupFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Member: NewMemberFactory(),
		Group:  NewGroupFactory(),
	}
}
