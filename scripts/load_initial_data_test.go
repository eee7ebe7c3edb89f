package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	apperrors "dad-circles-backend/internal/errors"
	"dad-circles-backend/internal/mocks"
	"dad-circles-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoadMembers(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "members-austin.yaml"), []byte(`
members:
  - email: a@example.com
    first_name: A
    city: Austin
    state: TX
    children:
      - birth_year: 2026
        birth_month: 4
    metadata:
      source: referral
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.yaml"), []byte("members: [{email: ignored@example.com}]"), 0o600))

	members, err := loadMembers(dir)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "a@example.com", members[0].Email)
	require.NotNil(t, members[0].Children[0].BirthMonth)
	assert.Equal(t, 4, *members[0].Children[0].BirthMonth)

	req, err := toCreateRequest(members[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"source":"referral"}`, string(req.Metadata))
	assert.Equal(t, 2026, req.Children[0].BirthYear)
}

func TestLoadMembers_BundledData(t *testing.T) {
	members, err := loadMembers("data")
	require.NoError(t, err)
	assert.NotEmpty(t, members)
}

func TestSeedMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockMemberServiceInterface(ctrl)

	data := []MemberData{
		{Email: "new@example.com", FirstName: "New", City: "Austin", State: "TX", Children: []ChildData{{BirthYear: 2026}}},
		{Email: "dup@example.com", FirstName: "Dup", City: "Austin", State: "TX", Children: []ChildData{{BirthYear: 2026}}},
	}

	gomock.InOrder(
		svc.EXPECT().CreateMember(gomock.Any()).Return(&service.MemberResponse{}, nil),
		svc.EXPECT().CreateMember(gomock.Any()).Return(nil, apperrors.ErrMemberExists),
	)

	created, skipped, err := seedMembers(svc, data)
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, skipped)
}

func TestSeedMembers_StopsOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockMemberServiceInterface(ctrl)
	svc.EXPECT().CreateMember(gomock.Any()).Return(nil, errors.New("db down"))

	_, _, err := seedMembers(svc, []MemberData{{Email: "x@example.com"}, {Email: "y@example.com"}})
	assert.ErrorContains(t, err, "x@example.com")
}
