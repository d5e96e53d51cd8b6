//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"sportfields/internal/domain/field"
	"sportfields/internal/handler/api"
	resdto "sportfields/internal/handler/dto/response"
	"sportfields/internal/usecase/commands"
	"sportfields/internal/usecase/queries"
	"sportfields/tests/common/httptest"
	commandsmock "sportfields/tests/mock/commands"
	queriesmock "sportfields/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FieldHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockFieldCommands
	mockQueries  *queriesmock.MockFieldQueries
	handler      *api.FieldHandler
}

func (s *FieldHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockFieldCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockFieldQueries(s.mockCtrl)
	s.handler = api.NewFieldHandler(s.mockCommands, s.mockQueries)

	asOwner := func(handler gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("username", "gheorghe.ionescu")
			handler(c)
		}
	}
	s.router.POST("/add-field", asOwner(s.handler.AddField))
	s.router.PUT("/update-field", asOwner(s.handler.UpdateField))
	s.router.DELETE("/delete-field/:id", asOwner(s.handler.DeleteField))
	s.router.POST("/get-owner-fields", asOwner(s.handler.GetOwnerFields))
	s.router.POST("/search-fields", s.handler.SearchFields)
	s.router.GET("/get-owner-sports-fields/:username", s.handler.GetOwnerSportsFields)
}

func (s *FieldHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFieldHandlerSuite(t *testing.T) {
	suite.Run(t, new(FieldHandlerTestSuite))
}

func (s *FieldHandlerTestSuite) TestAddField() {
	url := "/add-field"
	reqBody := map[string]any{
		"denumire_sport": "fotbal",
		"denumire_teren": "Teren Central",
		"adresa":         "Strada Unirii 10",
		"sector":         3,
		"pret_ora":       80,
		"program":        "10:00 - 22:00",
	}

	s.Run("success", func() {
		s.mockCommands.EXPECT().
			CreateField(gomock.Any(), "gheorghe.ionescu", commands.CreateFieldInput{
				Sport:        "fotbal",
				Name:         "Teren Central",
				Address:      "Strada Unirii 10",
				City:         "Bucharest",
				Sector:       3,
				PricePerHour: 80,
				Schedule:     "10:00 - 22:00",
			}).
			Return(int64(3), nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Field added successfully!", response.Message)
	})

	s.Run("error: 400 on malformed schedule", func() {
		s.mockCommands.EXPECT().
			CreateField(gomock.Any(), "gheorghe.ionescu", gomock.Any()).
			Return(int64(0), field.ErrInvalidSchedule).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request data")
	})

	s.Run("error: 400 on out-of-range sector", func() {
		bad := map[string]any{
			"denumire_sport": "fotbal",
			"denumire_teren": "Teren Central",
			"adresa":         "Strada Unirii 10",
			"sector":         9,
			"pret_ora":       80,
			"program":        "10:00 - 22:00",
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *FieldHandlerTestSuite) TestUpdateField() {
	url := "/update-field"
	reqBody := map[string]any{"id_teren": 3, "pret_ora": 95, "program": "09:00 - 23:00"}

	s.Run("success", func() {
		s.mockCommands.EXPECT().
			UpdateField(gomock.Any(), "gheorghe.ionescu", int64(3), 95.0, "09:00 - 23:00").
			Return(nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Field updated successfully", response.Message)
	})

	s.Run("error: 403 for somebody else's field", func() {
		s.mockCommands.EXPECT().
			UpdateField(gomock.Any(), "gheorghe.ionescu", int64(3), 95.0, "09:00 - 23:00").
			Return(commands.ErrNotFieldOwner).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "You can only edit your own fields.")
	})

	s.Run("error: 404 for unknown field", func() {
		s.mockCommands.EXPECT().
			UpdateField(gomock.Any(), "gheorghe.ionescu", int64(3), 95.0, "09:00 - 23:00").
			Return(commands.ErrFieldMissing).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Field not found.")
	})
}

func (s *FieldHandlerTestSuite) TestDeleteField() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().
			DeleteField(gomock.Any(), "gheorghe.ionescu", int64(3)).
			Return(nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/delete-field/3", nil, "")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Field deleted successfully!", response.Message)
	})

	s.Run("error: 403 for somebody else's field", func() {
		s.mockCommands.EXPECT().
			DeleteField(gomock.Any(), "gheorghe.ionescu", int64(5)).
			Return(commands.ErrNotFieldOwner).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/delete-field/5", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "You can only delete your own fields.")
	})
}

func (s *FieldHandlerTestSuite) TestSearchFields() {
	results := []*queries.FieldWithReservations{
		{
			FieldView: queries.FieldView{
				ID: 3, Sport: "fotbal", Name: "Teren Central",
				Address: "Strada Unirii 10", Sector: 3,
				PricePerHour: 80, Schedule: "10:00 - 22:00",
			},
			Reserved: []queries.ReservedInterval{
				{FieldID: 3, Date: "2026-09-10", StartHour: 14, EndHour: 16},
			},
		},
	}

	s.mockQueries.EXPECT().
		Search(gomock.Any(), "fotbal", 3, gomock.Any()).
		Return(results, nil).
		Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/search-fields",
		map[string]any{"sport": "fotbal", "sector": 3}, "")

	var response resdto.SearchFieldsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response.Fields, 1)
	s.Equal("Teren Central", response.Fields[0].Name)
	s.Require().Len(response.Fields[0].Reservations, 1)
	s.Equal("14:00", response.Fields[0].Reservations[0].Start)
	s.Equal("16:00", response.Fields[0].Reservations[0].End)
}

func (s *FieldHandlerTestSuite) TestGetOwnerSportsFields() {
	views := []*queries.FieldView{
		{ID: 3, Sport: "fotbal", Name: "Teren Central", Sector: 3, PricePerHour: 80, Schedule: "10:00 - 22:00"},
		{ID: 5, Sport: "tenis", Name: "Arena Tineretului", Sector: 2, PricePerHour: 60, Schedule: "Non-stop"},
	}

	s.mockQueries.EXPECT().
		ListByOwner(gomock.Any(), "gheorghe.ionescu").
		Return(views, nil).
		Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/get-owner-sports-fields/gheorghe.ionescu", nil, "")

	var items []resdto.FieldItem
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &items)
	s.Require().Len(items, 2)
	s.Equal(int64(3), items[0].ID)
	s.Equal("Non-stop", items[1].Schedule)
}
