package handlers_test

import (
	"net/http"
	"testing"

	"dad-circles-backend/internal/api/handlers"
	apperrors "dad-circles-backend/internal/errors"
	"dad-circles-backend/internal/mocks"
	"dad-circles-backend/internal/service"
	"dad-circles-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MatchingHandlerTestSuite defines the test suite for MatchingHandler
type MatchingHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockMatchingServiceInterface
	http        *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *MatchingHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockMatchingServiceInterface(suite.ctrl)
	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.POST("/admin/matching/run", handlers.NewMatchingHandler(suite.mockService).RunPass)
}

// TearDownTest cleans up after each test
func (suite *MatchingHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MatchingHandlerTestSuite) TestRunPass_EmptyBody() {
	runID := uuid.New()
	suite.mockService.EXPECT().RunPass(gomock.Any(), &service.RunPassRequest{}).
		Return(&service.PassSummary{RunID: runID, Considered: 10}, nil)

	recorder := suite.http.MakeRequest(http.MethodPost, "/admin/matching/run", nil)

	var resp service.PassSummary
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), runID, resp.RunID)
	assert.Equal(suite.T(), 10, resp.Considered)
}

func (suite *MatchingHandlerTestSuite) TestRunPass_DryRunForLocation() {
	req := &service.RunPassRequest{City: "Austin", State: "TX", DryRun: true}
	suite.mockService.EXPECT().RunPass(gomock.Any(), req).Return(&service.PassSummary{DryRun: true}, nil)

	recorder := suite.http.MakeRequest(http.MethodPost, "/admin/matching/run", req)

	var resp service.PassSummary
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.True(suite.T(), resp.DryRun)
}

func (suite *MatchingHandlerTestSuite) TestRunPass_AlreadyRunning() {
	suite.mockService.EXPECT().RunPass(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrMatchingRunInProgress)

	recorder := suite.http.MakeRequest(http.MethodPost, "/admin/matching/run", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already running")
}

func (suite *MatchingHandlerTestSuite) TestRunPass_InvalidBody() {
	recorder := suite.http.MakeRequest(http.MethodPost, "/admin/matching/run", []int{1, 2})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

func TestMatchingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MatchingHandlerTestSuite))
}
