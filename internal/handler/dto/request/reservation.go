package request

import "sportfields/internal/usecase/commands"

type MakeReservationRequest struct {
	FieldID int64  `json:"id_teren" binding:"required"`
	Date    string `json:"data_rezervare" binding:"required"`
	Start   string `json:"ora_inceput" binding:"required"`
	End     string `json:"ora_sfarsit" binding:"required"`
}

func (r *MakeReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		FieldID: r.FieldID,
		Date:    r.Date,
		Start:   r.Start,
		End:     r.End,
	}
}

type CheckoutRequest struct {
	FieldID    int64   `json:"id_teren" binding:"required"`
	TotalPrice float64 `json:"totalPrice" binding:"required,gt=0"`
}
