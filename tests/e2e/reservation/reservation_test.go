//go:build e2e

package reservation_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	"sportfields/internal/domain/availability"
	resdto "sportfields/internal/handler/dto/response"
	"sportfields/tests/common/authtest"
	"sportfields/tests/common/dbtest"
	"sportfields/tests/common/httptest"
	"sportfields/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type reservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

// tomorrow returns tomorrow's date in the venue timezone, so the tests
// never trip over the past-date guard.
func tomorrow(t *testing.T) string {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Bucharest")
	require.NoError(t, err)
	return time.Now().In(loc).AddDate(0, 0, 1).Format("2006-01-02")
}

func makeReservationBody(fieldID int64, date, start, end string) map[string]any {
	return map[string]any{
		"id_teren":       fieldID,
		"data_rezervare": date,
		"ora_inceput":    start,
		"ora_sfarsit":    end,
	}
}

func (s *reservationSuite) newAthlete(email string) (string, string) {
	return authtest.RegisterAndLogin(s.T(), s.Router, email, 0)
}

func (s *reservationSuite) newField(owner, name string) int64 {
	return dbtest.CreateTestField(s.T(), s.DB, owner, "fotbal", name, 80, "10:00 - 22:00")
}

func (s *reservationSuite) TestMakeReservation() {
	s.Run("booking marks the hours reserved in the grid", func() {
		t := s.T()
		owner := dbtest.CreateTestUser(t, s.DB, "gheorghe.ionescu@gmail.com", "owner")
		fieldID := s.newField(owner, "Teren Central")
		_, token := s.newAthlete("ion.popescu@gmail.com")
		date := tomorrow(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/make-reservation",
			makeReservationBody(fieldID, date, "10:00", "12:00"), token)

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &response)
		require.Equal(t, "Reservation made successfully!", response.Message)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("/get-field-availability/%d?date=%s", fieldID, date), nil, "")
		var grid resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &grid)
		require.Len(t, grid.Hours, availability.HoursPerDay)
		require.Equal(t, availability.StateReserved, grid.Hours[10])
		require.Equal(t, availability.StateReserved, grid.Hours[11])
		require.Equal(t, availability.StateAvailable, grid.Hours[12])
		require.Equal(t, availability.StateClosed, grid.Hours[9])
	})

	s.Run("slot running to midnight books and reads back", func() {
		t := s.T()
		owner := dbtest.CreateTestUser(t, s.DB, "gheorghe.ionescu@gmail.com", "owner")
		fieldID := dbtest.CreateTestField(t, s.DB, owner, "fotbal", "Teren Nocturn", 80, "14:00 - 24:00")
		username, token := s.newAthlete("ion.popescu@gmail.com")
		date := tomorrow(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/make-reservation",
			makeReservationBody(fieldID, date, "22:00", "24:00"), token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/get-reservations/"+username, nil, token)
		var list resdto.ReservationsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list.Reservations, 1)
		require.Equal(t, "22:00:00", list.Reservations[0].Start)
		require.Equal(t, "24:00:00", list.Reservations[0].End)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("/get-field-availability/%d?date=%s", fieldID, date), nil, "")
		var grid resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &grid)
		require.Equal(t, availability.StateReserved, grid.Hours[22])
		require.Equal(t, availability.StateReserved, grid.Hours[23])
		require.Equal(t, availability.StateAvailable, grid.Hours[21])
	})

	s.Run("second booking on the same field that day is rejected", func() {
		t := s.T()
		owner := dbtest.CreateTestUser(t, s.DB, "gheorghe.ionescu@gmail.com", "owner")
		fieldID := s.newField(owner, "Teren Central")
		_, token := s.newAthlete("ion.popescu@gmail.com")
		date := tomorrow(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/make-reservation",
			makeReservationBody(fieldID, date, "10:00", "12:00"), token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/make-reservation",
			makeReservationBody(fieldID, date, "14:00", "15:00"), token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "You already booked this field for that day.")
	})

	s.Run("another user cannot take an overlapping slot", func() {
		t := s.T()
		owner := dbtest.CreateTestUser(t, s.DB, "gheorghe.ionescu@gmail.com", "owner")
		fieldID := s.newField(owner, "Teren Central")
		_, firstToken := s.newAthlete("ion.popescu@gmail.com")
		_, secondToken := s.newAthlete("maria.enache@gmail.com")
		date := tomorrow(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/make-reservation",
			makeReservationBody(fieldID, date, "10:00", "13:00"), firstToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/make-reservation",
			makeReservationBody(fieldID, date, "12:00", "14:00"), secondToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "This slot was just booked by someone else.")
	})

	s.Run("fourth reservation on one day hits the cap", func() {
		t := s.T()
		owner := dbtest.CreateTestUser(t, s.DB, "gheorghe.ionescu@gmail.com", "owner")
		_, token := s.newAthlete("ion.popescu@gmail.com")
		date := tomorrow(t)

		for i := range 3 {
			fieldID := s.newField(owner, fmt.Sprintf("Teren %d", i+1))
			start := fmt.Sprintf("%02d:00", 10+i)
			end := fmt.Sprintf("%02d:00", 11+i)
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/make-reservation",
				makeReservationBody(fieldID, date, start, end), token)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}

		fourthField := s.newField(owner, "Teren 4")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/make-reservation",
			makeReservationBody(fourthField, date, "15:00", "16:00"), token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "You can make at most 3 reservations per day.")
	})

	s.Run("booking a past date is rejected", func() {
		t := s.T()
		owner := dbtest.CreateTestUser(t, s.DB, "gheorghe.ionescu@gmail.com", "owner")
		fieldID := s.newField(owner, "Teren Central")
		_, token := s.newAthlete("ion.popescu@gmail.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/make-reservation",
			makeReservationBody(fieldID, "2020-01-01", "10:00", "11:00"), token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Nu poti face rezervari pentru zilele din trecut!")
	})

	s.Run("booking outside the schedule is rejected", func() {
		t := s.T()
		owner := dbtest.CreateTestUser(t, s.DB, "gheorghe.ionescu@gmail.com", "owner")
		fieldID := s.newField(owner, "Teren Central")
		_, token := s.newAthlete("ion.popescu@gmail.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/make-reservation",
			makeReservationBody(fieldID, tomorrow(t), "07:00", "08:00"), token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Field is not available at this hour.")
	})
}

func (s *reservationSuite) TestCancelReservation() {
	s.Run("holder cancels and the slot frees up", func() {
		t := s.T()
		owner := dbtest.CreateTestUser(t, s.DB, "gheorghe.ionescu@gmail.com", "owner")
		fieldID := s.newField(owner, "Teren Central")
		username, token := s.newAthlete("ion.popescu@gmail.com")
		date := tomorrow(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/make-reservation",
			makeReservationBody(fieldID, date, "10:00", "12:00"), token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/get-reservations/"+username, nil, token)
		var list resdto.ReservationsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list.Reservations, 1)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf("/cancel-reservation/%d", list.Reservations[0].ID), nil, token)
		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &response)
		require.Equal(t, "Reservation canceled successfully!", response.Message)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("/get-field-availability/%d?date=%s", fieldID, date), nil, "")
		var grid resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &grid)
		require.Equal(t, availability.StateAvailable, grid.Hours[10])
	})

	s.Run("a stranger cannot cancel somebody else's reservation", func() {
		t := s.T()
		owner := dbtest.CreateTestUser(t, s.DB, "gheorghe.ionescu@gmail.com", "owner")
		fieldID := s.newField(owner, "Teren Central")
		username, token := s.newAthlete("ion.popescu@gmail.com")
		_, strangerToken := s.newAthlete("maria.enache@gmail.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/make-reservation",
			makeReservationBody(fieldID, tomorrow(t), "10:00", "12:00"), token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/get-reservations/"+username, nil, token)
		var list resdto.ReservationsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list.Reservations, 1)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf("/cancel-reservation/%d", list.Reservations[0].ID), nil, strangerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "You cannot cancel this reservation.")
	})

	s.Run("unknown reservation yields 404", func() {
		t := s.T()
		_, token := s.newAthlete("ion.popescu@gmail.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, "/cancel-reservation/9999", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Reservation not found.")
	})
}

// Two users race for the same slot; the advisory lock must let exactly
// one through.
func (s *reservationSuite) TestConcurrentBooking() {
	s.Run("only one of two simultaneous bookings wins", func() {
		t := s.T()
		owner := dbtest.CreateTestUser(t, s.DB, "gheorghe.ionescu@gmail.com", "owner")
		fieldID := s.newField(owner, "Teren Central")
		_, firstToken := s.newAthlete("ion.popescu@gmail.com")
		_, secondToken := s.newAthlete("maria.enache@gmail.com")
		date := tomorrow(t)

		body, err := json.Marshal(makeReservationBody(fieldID, date, "10:00", "12:00"))
		require.NoError(t, err)

		statuses := make([]int, 2)
		var wg sync.WaitGroup
		for i, token := range []string{firstToken, secondToken} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				req := nethttptest.NewRequest(http.MethodPost, "/make-reservation", bytes.NewReader(body))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("Authorization", "Bearer "+token)
				w := nethttptest.NewRecorder()
				s.Router.ServeHTTP(w, req)
				statuses[i] = w.Code
			}()
		}
		wg.Wait()

		wins, conflicts := 0, 0
		for _, code := range statuses {
			switch code {
			case http.StatusOK:
				wins++
			case http.StatusConflict:
				conflicts++
			}
		}
		require.Equal(t, 1, wins, "exactly one booking should succeed, got %v", statuses)
		require.Equal(t, 1, conflicts, "the loser should get a conflict, got %v", statuses)
	})
}
