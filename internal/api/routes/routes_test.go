package routes_test

import (
	"net/http"
	"testing"
	"time"

	"dad-circles-backend/internal/api/handlers"
	"dad-circles-backend/internal/api/routes"
	"dad-circles-backend/internal/auth"
	"dad-circles-backend/internal/mocks"
	"dad-circles-backend/internal/service"
	"dad-circles-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminRoutesRequireToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	members := mocks.NewMockMemberServiceInterface(ctrl)
	groups := mocks.NewMockGroupServiceInterface(ctrl)
	matching := mocks.NewMockMatchingServiceInterface(ctrl)

	tokens, err := auth.NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)
	token, err := tokens.Generate("ops@dadcircles.test")
	require.NoError(t, err)

	h := testutils.SetupHTTPTest()
	groupHandler := handlers.NewGroupHandler(groups)
	v1 := h.Router.Group("/api/v1")
	routes.RegisterPublic(v1, handlers.NewMemberHandler(members), groupHandler)
	routes.RegisterAdmin(v1.Group("/admin", auth.NewAuthMiddleware(tokens).RequireAdmin()), groupHandler, handlers.NewMatchingHandler(matching))

	groupID := uuid.New()
	groups.EXPECT().Approve(gomock.Any(), groupID).Return(&service.ApproveResult{}, nil)
	groups.EXPECT().ListGroups("", 1, 20).Return(&service.GroupListResponse{}, nil)
	matching.EXPECT().RunPass(gomock.Any(), gomock.Any()).Return(&service.PassSummary{}, nil)

	h.RunHTTPTestCases(t, []testutils.HTTPTestCase{
		{Name: "public group list", Method: http.MethodGet, URL: "/api/v1/groups", ExpectedStatus: http.StatusOK},
		{Name: "run without token", Method: http.MethodPost, URL: "/api/v1/admin/matching/run", ExpectedStatus: http.StatusUnauthorized},
		{Name: "approve without token", Method: http.MethodPost, URL: "/api/v1/admin/groups/" + groupID.String() + "/approve", ExpectedStatus: http.StatusUnauthorized},
		{Name: "delete with bad token", Method: http.MethodDelete, URL: "/api/v1/admin/groups/" + groupID.String(), Headers: testutils.BearerHeader("bogus"), ExpectedStatus: http.StatusUnauthorized},
		{Name: "run with token", Method: http.MethodPost, URL: "/api/v1/admin/matching/run", Headers: testutils.BearerHeader(token), ExpectedStatus: http.StatusOK},
		{Name: "approve with token", Method: http.MethodPost, URL: "/api/v1/admin/groups/" + groupID.String() + "/approve", Headers: testutils.BearerHeader(token), ExpectedStatus: http.StatusOK},
	})
}
