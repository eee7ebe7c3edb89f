package service_test

import (
	"errors"
	"testing"
	"time"

	"dad-circles-backend/internal/database/models"
	apperrors "dad-circles-backend/internal/errors"
	"dad-circles-backend/internal/mocks"
	"dad-circles-backend/internal/repository"
	"dad-circles-backend/internal/service"
	"dad-circles-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// MemberServiceTestSuite defines the test suite for MemberService
type MemberServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockMemberRepo *mocks.MockMemberRepositoryInterface
	memberService  *service.MemberService
	factory        *testutils.MemberFactory
	now            time.Time
}

// SetupTest sets up the test suite
func (suite *MemberServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMemberRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)
	suite.now = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	suite.factory = &testutils.MemberFactory{Now: suite.now}
	suite.memberService = service.NewMemberService(suite.mockMemberRepo, validator.New()).
		WithClock(func() time.Time { return suite.now })
}

// TearDownTest cleans up after each test
func (suite *MemberServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func validRequest() *service.CreateMemberRequest {
	return &service.CreateMemberRequest{
		Email:     "  Sam.Taylor@Test.com ",
		FirstName: "Sam",
		LastName:  "Taylor",
		Postcode:  "78701",
		City:      "Austin",
		State:     "TX",
		Children: []service.ChildRequest{
			{BirthYear: 2026, BirthMonth: intPtr(4), Gender: strPtr("male"), Type: strPtr("existing")},
		},
	}
}

func (suite *MemberServiceTestSuite) TestCreateMember_Success() {
	suite.mockMemberRepo.EXPECT().GetByEmail("sam.taylor@test.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockMemberRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.Member) error {
		m.ID = uuid.New()
		return nil
	})

	resp, err := suite.memberService.CreateMember(validRequest())

	require.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), uuid.Nil, resp.ID)
	assert.Equal(suite.T(), "sam.taylor@test.com", resp.Email)
	assert.True(suite.T(), resp.Eligible)
	assert.Nil(suite.T(), resp.GroupID)
	require.NotNil(suite.T(), resp.LifeStage)
	assert.Equal(suite.T(), models.LifeStageNewborn, *resp.LifeStage)
	require.Len(suite.T(), resp.Children, 1)
	require.NotNil(suite.T(), resp.Children[0].Type)
	assert.Equal(suite.T(), models.ChildTypeExisting, *resp.Children[0].Type)
}

func (suite *MemberServiceTestSuite) TestCreateMember_ExplicitlyIneligible() {
	req := validRequest()
	eligible := false
	req.Eligible = &eligible

	suite.mockMemberRepo.EXPECT().GetByEmail(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.mockMemberRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.memberService.CreateMember(req)

	require.NoError(suite.T(), err)
	assert.False(suite.T(), resp.Eligible)
}

func (suite *MemberServiceTestSuite) TestCreateMember_ExpectingChild() {
	req := validRequest()
	req.Children = []service.ChildRequest{{BirthYear: 2026, BirthMonth: intPtr(9), Type: strPtr("expecting")}}

	suite.mockMemberRepo.EXPECT().GetByEmail(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.mockMemberRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.memberService.CreateMember(req)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), resp.LifeStage)
	assert.Equal(suite.T(), models.LifeStageExpecting, *resp.LifeStage)
}

func (suite *MemberServiceTestSuite) TestCreateMember_StripsMarkup() {
	req := validRequest()
	req.FirstName = "<b>Sam</b>"
	req.LastName = "O'Brien"
	req.City = " <i>Austin</i> "
	req.Children[0].Name = `<a href="x">Ava</a>`

	var stored *models.Member
	suite.mockMemberRepo.EXPECT().GetByEmail(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.mockMemberRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.Member) error {
		stored = m
		return nil
	})

	_, err := suite.memberService.CreateMember(req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Sam", stored.FirstName)
	assert.Equal(suite.T(), "O'Brien", stored.LastName)
	assert.Equal(suite.T(), "Austin", stored.Location.City)
	assert.Equal(suite.T(), "Ava", stored.Children[0].Name)
}

func (suite *MemberServiceTestSuite) TestCreateMember_MarkupOnlyNameRejected() {
	req := validRequest()
	req.FirstName = "<img src=x>"
	suite.mockMemberRepo.EXPECT().GetByEmail(gomock.Any()).Times(0)

	_, err := suite.memberService.CreateMember(req)

	var validationErrs validator.ValidationErrors
	assert.True(suite.T(), errors.As(err, &validationErrs))
}

func (suite *MemberServiceTestSuite) TestCreateMember_DuplicateEmail() {
	existing := suite.factory.WithEmail("sam.taylor@test.com")
	suite.mockMemberRepo.EXPECT().GetByEmail("sam.taylor@test.com").Return(existing, nil)
	suite.mockMemberRepo.EXPECT().Create(gomock.Any()).Times(0)

	resp, err := suite.memberService.CreateMember(validRequest())

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMemberExists)
}

func (suite *MemberServiceTestSuite) TestCreateMember_LookupFailure() {
	suite.mockMemberRepo.EXPECT().GetByEmail(gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := suite.memberService.CreateMember(validRequest())

	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to check member email")
}

func (suite *MemberServiceTestSuite) TestCreateMember_Validation() {
	testCases := []struct {
		name     string
		mutate   func(req *service.CreateMemberRequest)
		errorMsg string
	}{
		{"invalid email", func(r *service.CreateMemberRequest) { r.Email = "not-an-email" }, "Email"},
		{"missing first name", func(r *service.CreateMemberRequest) { r.FirstName = "" }, "FirstName"},
		{"missing city", func(r *service.CreateMemberRequest) { r.City = "  " }, "City"},
		{"missing state", func(r *service.CreateMemberRequest) { r.State = "" }, "State"},
		{"no children", func(r *service.CreateMemberRequest) { r.Children = nil }, "Children"},
		{"bad birth month", func(r *service.CreateMemberRequest) { r.Children[0].BirthMonth = intPtr(13) }, "BirthMonth"},
		{"missing birth year", func(r *service.CreateMemberRequest) { r.Children[0].BirthYear = 0 }, "BirthYear"},
		{"unknown gender", func(r *service.CreateMemberRequest) { r.Children[0].Gender = strPtr("unknown") }, "Gender"},
		{"unknown child type", func(r *service.CreateMemberRequest) { r.Children[0].Type = strPtr("adopted") }, "Type"},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)

			resp, err := suite.memberService.CreateMember(req)

			assert.Nil(t, resp)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
			assert.Contains(t, err.Error(), tc.errorMsg)
		})
	}
}

func (suite *MemberServiceTestSuite) TestGetMemberByID() {
	member := suite.factory.Create()
	suite.mockMemberRepo.EXPECT().GetByID(member.ID).Return(member, nil)

	resp, err := suite.memberService.GetMemberByID(member.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), member.Email, resp.Email)
	assert.Equal(suite.T(), "Austin", resp.City)
	require.NotNil(suite.T(), resp.LifeStage)
	assert.Equal(suite.T(), models.LifeStageNewborn, *resp.LifeStage)
}

func (suite *MemberServiceTestSuite) TestGetMemberByID_NotFound() {
	id := uuid.New()
	suite.mockMemberRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.memberService.GetMemberByID(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMemberNotFound)
}

func (suite *MemberServiceTestSuite) TestGetMemberByID_AgedOutHasNoLifeStage() {
	member := suite.factory.WithChildAged(40)
	suite.mockMemberRepo.EXPECT().GetByID(member.ID).Return(member, nil)

	resp, err := suite.memberService.GetMemberByID(member.ID)

	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), resp.LifeStage)
}

func (suite *MemberServiceTestSuite) TestListUnmatched() {
	pool := values(suite.factory.Pool("Austin", "TX", 3, 2))
	filter := &repository.LocationFilter{City: "Austin", State: "TX"}
	suite.mockMemberRepo.EXPECT().GetUnmatched(filter).Return(pool, nil)

	resp, err := suite.memberService.ListUnmatched(filter)

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 3)
}

func (suite *MemberServiceTestSuite) TestListUnmatched_PartialFilter() {
	_, err := suite.memberService.ListUnmatched(&repository.LocationFilter{State: "TX"})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}
