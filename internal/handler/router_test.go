//go:build unit

package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"shareit/internal/handler"
	"shareit/internal/handler/api"
	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/metrics"
	"shareit/internal/usecase/readmodel"
	"shareit/tests/common/httptest"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RouterTestSuite struct {
	suite.Suite
	engine      *gin.Engine
	userQueries *queriesmock.MockUserQueries
	itemQueries *queriesmock.MockItemQueries
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(s.T())

	s.userQueries = queriesmock.NewMockUserQueries(ctrl)
	s.itemQueries = queriesmock.NewMockItemQueries(ctrl)

	cfg := config.NewTestConfig()
	cfg.Metrics.Enabled = true
	metrics.Register()

	s.engine = gin.New()
	handler.NewRouter(s.engine, cfg, handler.Handlers{
		User:        api.NewUserHandler(commandsmock.NewMockUserCommands(ctrl), s.userQueries),
		Item:        api.NewItemHandler(commandsmock.NewMockItemCommands(ctrl), commandsmock.NewMockCommentCommands(ctrl), s.itemQueries),
		Booking:     api.NewBookingHandler(commandsmock.NewMockBookingCommands(ctrl), queriesmock.NewMockBookingQueries(ctrl)),
		ItemRequest: api.NewItemRequestHandler(commandsmock.NewMockItemRequestCommands(ctrl), queriesmock.NewMockItemRequestQueries(ctrl)),
	})
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) TestHealth() {
	w := httptest.PerformRequest(s.T(), s.engine, http.MethodGet, "/health", nil, "")
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterTestSuite) TestIdentityHeader() {
	s.Run("user routes do not need the header", func() {
		s.userQueries.EXPECT().List(gomock.Any()).Return([]*readmodel.UserView{}, nil)

		w := httptest.PerformRequest(s.T(), s.engine, http.MethodGet, "/users", nil, "")
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("item search does not need the header", func() {
		s.itemQueries.EXPECT().Search(gomock.Any(), "drill").Return([]*readmodel.ItemView{}, nil)

		w := httptest.PerformRequest(s.T(), s.engine, http.MethodGet, "/items/search?text=drill", nil, "")
		s.Equal(http.StatusOK, w.Code)
	})

	for _, path := range []string{"/items", "/bookings", "/bookings/owner", "/requests", "/requests/all"} {
		s.Run(path+" rejects a missing header", func() {
			w := httptest.PerformRequest(s.T(), s.engine, http.MethodGet, path, nil, "")
			httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, httperr.KindValidation, "missing X-Sharer-User-Id header")
		})
	}
}

func (s *RouterTestSuite) TestMetricsEndpoint() {
	httptest.PerformRequest(s.T(), s.engine, http.MethodGet, "/health", nil, "")

	w := httptest.PerformRequest(s.T(), s.engine, http.MethodGet, "/metrics", nil, "")

	s.Equal(http.StatusOK, w.Code)
	s.True(strings.Contains(w.Body.String(), `shareit_http_requests_total{method="GET",route="/health",service="server",status="200"}`))
}
