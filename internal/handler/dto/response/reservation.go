package response

import (
	"sportfields/internal/domain/availability"
	"sportfields/internal/usecase/queries"
)

type ReservationItem struct {
	ID        int64  `json:"id_rezervare"`
	Username  string `json:"username_sportiv"`
	FieldID   int64  `json:"id_teren"`
	FieldName string `json:"denumire_teren"`
	Date      string `json:"data_rezervare"`
	Start     string `json:"ora_inceput"`
	End       string `json:"ora_sfarsit"`
}

type ReservationsResponse struct {
	Success      bool              `json:"success"`
	Reservations []ReservationItem `json:"reservations"`
}

type AvailabilityResponse struct {
	Success bool                     `json:"success"`
	FieldID int64                    `json:"id_teren"`
	Date    string                   `json:"date"`
	Hours   []availability.SlotState `json:"hours"`
}

type ReservationResultResponse struct {
	Success bool              `json:"success"`
	Result  []ReservationItem `json:"result"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

func NewReservationItem(view *queries.ReservationView) ReservationItem {
	return ReservationItem{
		ID:        view.ID,
		Username:  view.Username,
		FieldID:   view.FieldID,
		FieldName: view.FieldName,
		Date:      view.Date,
		Start:     HourAsTime(view.StartHour),
		End:       HourAsTime(view.EndHour),
	}
}

func NewReservationsResponse(views []*queries.ReservationView) ReservationsResponse {
	items := make([]ReservationItem, 0, len(views))
	for _, view := range views {
		items = append(items, NewReservationItem(view))
	}
	return ReservationsResponse{Success: true, Reservations: items}
}

func NewReservationResultResponse(views []*queries.ReservationView) ReservationResultResponse {
	items := make([]ReservationItem, 0, len(views))
	for _, view := range views {
		items = append(items, NewReservationItem(view))
	}
	return ReservationResultResponse{Success: true, Result: items}
}

func NewAvailabilityResponse(view *queries.AvailabilityView) AvailabilityResponse {
	hours := make([]availability.SlotState, availability.HoursPerDay)
	copy(hours, view.Hours[:])
	return AvailabilityResponse{
		Success: true,
		FieldID: view.FieldID,
		Date:    view.Date,
		Hours:   hours,
	}
}
