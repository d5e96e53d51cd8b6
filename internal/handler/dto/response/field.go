package response

import (
	"fmt"

	"sportfields/internal/usecase/queries"
)

type FieldItem struct {
	ID           int64   `json:"id_teren"`
	Sport        string  `json:"denumire_sport"`
	Name         string  `json:"denumire_teren"`
	Address      string  `json:"adresa"`
	Sector       int     `json:"sector"`
	PricePerHour float64 `json:"pret_ora"`
	Schedule     string  `json:"program"`
}

type ReservationInterval struct {
	Date  string `json:"data_rezervare"`
	Start string `json:"ora_inceput"`
	End   string `json:"ora_sfarsit"`
}

// FieldWithReservations is a search result: the field plus its
// occupied slots, enough to paint the hour grid client-side.
type FieldWithReservations struct {
	FieldItem
	Reservations []ReservationInterval `json:"reservations"`
}

type SearchFieldsResponse struct {
	Success bool                    `json:"success"`
	Fields  []FieldWithReservations `json:"fields"`
}

type CoordinatesResponse struct {
	Success bool    `json:"success"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

func NewCoordinatesResponse(lat, lng float64) CoordinatesResponse {
	return CoordinatesResponse{Success: true, Lat: lat, Lng: lng}
}

func NewFieldItem(view *queries.FieldView) FieldItem {
	return FieldItem{
		ID:           view.ID,
		Sport:        view.Sport,
		Name:         view.Name,
		Address:      view.Address,
		Sector:       view.Sector,
		PricePerHour: view.PricePerHour,
		Schedule:     view.Schedule,
	}
}

func NewSearchFieldsResponse(results []*queries.FieldWithReservations) SearchFieldsResponse {
	fields := make([]FieldWithReservations, 0, len(results))
	for _, result := range results {
		reservations := make([]ReservationInterval, 0, len(result.Reserved))
		for _, iv := range result.Reserved {
			reservations = append(reservations, ReservationInterval{
				Date:  iv.Date,
				Start: HourAsTime(iv.StartHour),
				End:   HourAsTime(iv.EndHour),
			})
		}
		fields = append(fields, FieldWithReservations{
			FieldItem:    NewFieldItem(&result.FieldView),
			Reservations: reservations,
		})
	}
	return SearchFieldsResponse{Success: true, Fields: fields}
}

// HourAsTime renders a whole hour the way the store does, "HH:00:00".
func HourAsTime(hour int) string {
	return fmt.Sprintf("%02d:00:00", hour)
}
