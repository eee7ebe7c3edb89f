//go:build integration

package service_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"dad-circles-backend/internal/app"
	"dad-circles-backend/internal/database/models"
	apperrors "dad-circles-backend/internal/errors"
	"dad-circles-backend/internal/repository"
	"dad-circles-backend/internal/service"
	"dad-circles-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

// PipelineTestSuite drives intake, matching and the group lifecycle against
// real Postgres and Redis through the same wiring the server uses
type PipelineTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	app           *app.App
	factory       *testutils.MemberFactory
	now           time.Time
}

func (suite *PipelineTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	cfg := *suite.baseTestSuite.Config
	cfg.RedisURL = testutils.StartRedis(suite.T())

	a, err := app.New(context.Background(), &cfg, suite.baseTestSuite.DB)
	suite.Require().NoError(err)
	suite.app = a

	suite.now = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return suite.now }
	a.Members.WithClock(clock)
	a.Matching.WithClock(clock)
	a.Groups.WithClock(clock)
	suite.factory = &testutils.MemberFactory{Now: suite.now}
}

func (suite *PipelineTestSuite) TearDownSuite() {
	suite.app.Close()
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *PipelineTestSuite) SetupTest()    { suite.baseTestSuite.SetupTest() }
func (suite *PipelineTestSuite) TearDownTest() { suite.baseTestSuite.TearDownTest() }

func (suite *PipelineTestSuite) enroll(city, state string, ages ...int) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(ages))
	for i, age := range ages {
		child := suite.factory.ChildAged(age)
		resp, err := suite.app.Members.CreateMember(&service.CreateMemberRequest{
			Email:     fmt.Sprintf("dad%d.%s@example.com", i, city),
			FirstName: fmt.Sprintf("Dad%d", i),
			City:      city,
			State:     state,
			Children:  []service.ChildRequest{{BirthYear: child.BirthYear, BirthMonth: child.BirthMonth}},
		})
		suite.Require().NoError(err)
		ids = append(ids, resp.ID)
	}
	return ids
}

func (suite *PipelineTestSuite) TestPassFormsPendingGroupAndIsIdempotent() {
	ids := suite.enroll("Austin", "TX", 1, 2, 2, 3)

	summary, err := suite.app.Matching.RunPass(context.Background(), &service.RunPassRequest{})
	suite.Require().NoError(err)
	suite.Require().Len(summary.Groups, 1)
	suite.Empty(summary.Failures)

	formed := summary.Groups[0]
	suite.Equal(models.LifeStageNewborn, formed.LifeStage)
	suite.ElementsMatch(ids, formed.MemberIDs)

	group, err := suite.app.Groups.GetGroupByID(*formed.GroupID)
	suite.Require().NoError(err)
	suite.Equal(models.GroupStatusPending, group.Status)
	suite.Len(group.MemberEmails, 4)

	for _, id := range ids {
		member, err := suite.app.Members.GetMemberByID(id)
		suite.Require().NoError(err)
		suite.Require().NotNil(member.GroupID)
		suite.Equal(*formed.GroupID, *member.GroupID)
	}

	again, err := suite.app.Matching.RunPass(context.Background(), &service.RunPassRequest{})
	suite.Require().NoError(err)
	suite.Empty(again.Groups)
	suite.Zero(again.Considered)
}

func (suite *PipelineTestSuite) TestDryRunWritesNothing() {
	suite.enroll("Denver", "CO", 1, 2, 3, 4)

	summary, err := suite.app.Matching.RunPass(context.Background(), &service.RunPassRequest{DryRun: true})
	suite.Require().NoError(err)
	suite.Require().Len(summary.Groups, 1)
	suite.Nil(summary.Groups[0].GroupID)

	unmatched, err := suite.app.Members.ListUnmatched(&repository.LocationFilter{City: "Denver", State: "CO"})
	suite.Require().NoError(err)
	suite.Len(unmatched, 4)
}

func (suite *PipelineTestSuite) TestApproveThenDeleteLifecycle() {
	ids := suite.enroll("Austin", "TX", 1, 2, 2, 3)
	summary, err := suite.app.Matching.RunPass(context.Background(), &service.RunPassRequest{City: "Austin", State: "TX"})
	suite.Require().NoError(err)
	suite.Require().Len(summary.Groups, 1)
	groupID := *summary.Groups[0].GroupID

	approved, err := suite.app.Groups.Approve(context.Background(), groupID)
	suite.Require().NoError(err)
	suite.Equal(models.GroupStatusActive, approved.Group.Status)
	suite.ElementsMatch(ids, approved.Delivered)
	suite.Empty(approved.Failed)
	suite.Require().NotNil(approved.Group.IntroductionSentAt)

	_, err = suite.app.Groups.Approve(context.Background(), groupID)
	suite.ErrorIs(err, apperrors.ErrGroupNotPending)

	_, err = suite.app.Groups.Delete(context.Background(), groupID)
	suite.ErrorIs(err, apperrors.ErrGroupActive)
}

func (suite *PipelineTestSuite) TestDeleteReleasesMembersForNextPass() {
	ids := suite.enroll("Austin", "TX", 1, 2, 2, 3)
	first, err := suite.app.Matching.RunPass(context.Background(), &service.RunPassRequest{})
	suite.Require().NoError(err)
	suite.Require().Len(first.Groups, 1)

	result, err := suite.app.Groups.Delete(context.Background(), *first.Groups[0].GroupID)
	suite.Require().NoError(err)
	suite.ElementsMatch(ids, result.ReleasedMemberIDs)
	suite.Empty(result.MissingMemberIDs)

	_, err = suite.app.Groups.GetGroupByID(*first.Groups[0].GroupID)
	suite.ErrorIs(err, apperrors.ErrGroupNotFound)

	second, err := suite.app.Matching.RunPass(context.Background(), &service.RunPassRequest{})
	suite.Require().NoError(err)
	suite.Require().Len(second.Groups, 1)
	suite.ElementsMatch(ids, second.Groups[0].MemberIDs)
}

func TestPipelineTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}
