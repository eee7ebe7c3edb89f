package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"dad-circles-backend/internal/api/handlers"
	apperrors "dad-circles-backend/internal/errors"
	"dad-circles-backend/internal/mocks"
	"dad-circles-backend/internal/repository"
	"dad-circles-backend/internal/service"
	"dad-circles-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MemberHandlerTestSuite defines the test suite for MemberHandler
type MemberHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockMemberServiceInterface
	http        *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *MemberHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockMemberServiceInterface(suite.ctrl)
	suite.http = testutils.SetupHTTPTest()

	handler := handlers.NewMemberHandler(suite.mockService)
	suite.http.Router.POST("/members", handler.CreateMember)
	suite.http.Router.GET("/members/unmatched", handler.ListUnmatched)
	suite.http.Router.GET("/members/:id", handler.GetMember)
}

// TearDownTest cleans up after each test
func (suite *MemberHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func memberBody() map[string]interface{} {
	return map[string]interface{}{
		"email":      "sam@test.com",
		"first_name": "Sam",
		"city":       "Austin",
		"state":      "TX",
		"children":   []map[string]interface{}{{"birth_year": 2026, "birth_month": 4}},
	}
}

func (suite *MemberHandlerTestSuite) TestCreateMember_Success() {
	id := uuid.New()
	suite.mockService.EXPECT().CreateMember(gomock.Any()).
		DoAndReturn(func(req *service.CreateMemberRequest) (*service.MemberResponse, error) {
			assert.Equal(suite.T(), "Austin", req.City)
			assert.Len(suite.T(), req.Children, 1)
			return &service.MemberResponse{ID: id, Email: req.Email, City: req.City, State: req.State, Eligible: true}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPost, "/members", memberBody())

	var resp service.MemberResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	assert.Equal(suite.T(), id, resp.ID)
	assert.True(suite.T(), resp.Eligible)
}

func (suite *MemberHandlerTestSuite) TestCreateMember_InvalidJSON() {
	recorder := suite.http.MakeRequest(http.MethodPost, "/members", "not an object")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

func (suite *MemberHandlerTestSuite) TestCreateMember_ServiceErrors() {
	testCases := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"duplicate email", apperrors.ErrMemberExists, http.StatusConflict, "already exists"},
		{"validation", apperrors.NewValidationError("email", "invalid"), http.StatusBadRequest, "email"},
		{"unexpected", errors.New("connection refused"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockService.EXPECT().CreateMember(gomock.Any()).Return(nil, tc.err)

			recorder := suite.http.MakeRequest(http.MethodPost, "/members", memberBody())

			testutils.AssertErrorResponse(suite.T(), recorder, tc.expectedStatus, tc.expectedMsg)
		})
	}
}

func (suite *MemberHandlerTestSuite) TestGetMember() {
	id := uuid.New()
	suite.mockService.EXPECT().GetMemberByID(id).Return(&service.MemberResponse{ID: id, Email: "sam@test.com"}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/members/"+id.String(), nil)

	var resp service.MemberResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), "sam@test.com", resp.Email)
}

func (suite *MemberHandlerTestSuite) TestGetMember_InvalidID() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/members/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid member ID")
}

func (suite *MemberHandlerTestSuite) TestGetMember_NotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().GetMemberByID(id).Return(nil, apperrors.ErrMemberNotFound)

	recorder := suite.http.MakeRequest(http.MethodGet, "/members/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "member not found")
}

func (suite *MemberHandlerTestSuite) TestListUnmatched_NoFilter() {
	suite.mockService.EXPECT().ListUnmatched(nil).Return([]service.MemberResponse{{ID: uuid.New()}}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/members/unmatched", nil)

	var resp []service.MemberResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Len(suite.T(), resp, 1)
}

func (suite *MemberHandlerTestSuite) TestListUnmatched_WithLocation() {
	suite.mockService.EXPECT().
		ListUnmatched(&repository.LocationFilter{City: "Austin", State: "TX"}).
		Return([]service.MemberResponse{}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/members/unmatched?city=Austin&state=TX", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *MemberHandlerTestSuite) TestListUnmatched_PartialLocation() {
	suite.mockService.EXPECT().
		ListUnmatched(&repository.LocationFilter{City: "Austin"}).
		Return(nil, apperrors.NewValidationError("location", "city and state must be given together"))

	recorder := suite.http.MakeRequest(http.MethodGet, "/members/unmatched?city=Austin", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "city and state")
}

func TestMemberHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MemberHandlerTestSuite))
}
