package request

import "sportfields/internal/usecase/commands"

type AddFieldRequest struct {
	Sport        string  `json:"denumire_sport" binding:"required"`
	Name         string  `json:"denumire_teren" binding:"required"`
	Address      string  `json:"adresa" binding:"required"`
	Sector       int     `json:"sector" binding:"required,min=1,max=6"`
	PricePerHour float64 `json:"pret_ora" binding:"required,gt=0"`
	Schedule     string  `json:"program" binding:"required"`
}

// Every field is in Bucharest; the city is not client-selectable.
const defaultCity = "Bucharest"

func (r *AddFieldRequest) ToInput() commands.CreateFieldInput {
	return commands.CreateFieldInput{
		Sport:        r.Sport,
		Name:         r.Name,
		Address:      r.Address,
		City:         defaultCity,
		Sector:       r.Sector,
		PricePerHour: r.PricePerHour,
		Schedule:     r.Schedule,
	}
}

type UpdateFieldRequest struct {
	FieldID      int64   `json:"id_teren" binding:"required"`
	PricePerHour float64 `json:"pret_ora" binding:"required,gt=0"`
	Schedule     string  `json:"program" binding:"required"`
}

type SearchFieldsRequest struct {
	Sport  string `json:"sport"`
	Sector int    `json:"sector"`
}
