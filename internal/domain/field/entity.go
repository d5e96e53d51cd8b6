package field

import (
	"strings"
	"time"

	"sportfields/internal/pkg/errs"
)

var (
	ErrEmptyAddress  = errs.New("address cannot be empty")
	ErrEmptyName     = errs.New("field name cannot be empty")
	ErrInvalidPrice  = errs.New("price per hour must be positive")
	ErrUnknownSport  = errs.New("unknown sport")
	ErrInvalidSector = errs.New("sector must be between 1 and 6")
	ErrInvalidStatus = errs.New("invalid field status")
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusConfirmed, StatusPending:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Sports the platform knows about. The assistant's video search keys
// its channel whitelist off these names.
var KnownSports = []string{"fotbal", "baschet", "tenis"}

func IsKnownSport(sport string) bool {
	for _, s := range KnownSports {
		if s == sport {
			return true
		}
	}
	return false
}

// Field is a bookable sports venue. Only confirmed fields are
// searchable and bookable.
type Field struct {
	id            int64
	ownerUsername string
	sport         string
	name          string
	address       string
	city          string
	sector        int
	pricePerHour  float64
	schedule      Schedule
	status        Status
	createdAt     time.Time
}

func NewField(ownerUsername, sport, name, address, city string, sector int, pricePerHour float64, schedule Schedule) (*Field, error) {
	if !IsKnownSport(sport) {
		return nil, ErrUnknownSport
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(address) == "" {
		return nil, ErrEmptyAddress
	}
	if sector < 1 || sector > 6 {
		return nil, ErrInvalidSector
	}
	if pricePerHour <= 0 {
		return nil, ErrInvalidPrice
	}

	return &Field{
		ownerUsername: ownerUsername,
		sport:         sport,
		name:          strings.TrimSpace(name),
		address:       strings.TrimSpace(address),
		city:          city,
		sector:        sector,
		pricePerHour:  pricePerHour,
		schedule:      schedule,
		status:        StatusConfirmed,
	}, nil
}

func Reconstruct(id int64, ownerUsername, sport, name, address, city string, sector int, pricePerHour float64, schedule Schedule, status Status, createdAt time.Time) *Field {
	return &Field{
		id:            id,
		ownerUsername: ownerUsername,
		sport:         sport,
		name:          name,
		address:       address,
		city:          city,
		sector:        sector,
		pricePerHour:  pricePerHour,
		schedule:      schedule,
		status:        status,
		createdAt:     createdAt,
	}
}

func (f *Field) ID() int64             { return f.id }
func (f *Field) OwnerUsername() string { return f.ownerUsername }
func (f *Field) Sport() string         { return f.sport }
func (f *Field) Name() string          { return f.name }
func (f *Field) Address() string       { return f.address }
func (f *Field) City() string          { return f.city }
func (f *Field) Sector() int           { return f.sector }
func (f *Field) PricePerHour() float64 { return f.pricePerHour }
func (f *Field) Schedule() Schedule    { return f.schedule }
func (f *Field) Status() Status        { return f.status }
func (f *Field) CreatedAt() time.Time  { return f.createdAt }

func (f *Field) IsConfirmed() bool {
	return f.status == StatusConfirmed
}

func (f *Field) IsOwnedBy(username string) bool {
	return f.ownerUsername == username
}

// UpdatePricing applies the only owner-editable attributes: the hourly
// price and the open window.
func (f *Field) UpdatePricing(pricePerHour float64, schedule Schedule) error {
	if pricePerHour <= 0 {
		return ErrInvalidPrice
	}
	f.pricePerHour = pricePerHour
	f.schedule = schedule
	return nil
}

// TotalPrice is the checkout amount for a whole-hour slot.
func (f *Field) TotalPrice(hours int) float64 {
	if hours < 0 {
		return 0
	}
	return f.pricePerHour * float64(hours)
}
