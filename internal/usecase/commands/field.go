package commands

import (
	"context"

	"sportfields/internal/domain/field"
	"sportfields/internal/infra"
	"sportfields/internal/pkg/errs"
)

var (
	ErrFieldMissing  = errs.New("field not found")
	ErrNotFieldOwner = errs.New("field belongs to another owner")
)

type FieldRepository interface {
	Create(ctx context.Context, f *field.Field) (int64, error)
	Find(ctx context.Context, id int64) (*field.Field, error)
	UpdatePricing(ctx context.Context, id int64, pricePerHour float64, schedule string) error
	Delete(ctx context.Context, id int64) error
}

type CreateFieldInput struct {
	Sport        string
	Name         string
	Address      string
	City         string
	Sector       int
	PricePerHour float64
	Schedule     string
}

type FieldCommands interface {
	CreateField(ctx context.Context, ownerUsername string, input CreateFieldInput) (int64, error)
	// UpdateField changes the only owner-editable attributes: the
	// hourly price and the open window.
	UpdateField(ctx context.Context, ownerUsername string, fieldID int64, pricePerHour float64, schedule string) error
	// DeleteField removes the field and, through the store, every
	// reservation on it.
	DeleteField(ctx context.Context, ownerUsername string, fieldID int64) error
}

type fieldCommandsImpl struct {
	fields FieldRepository
}

func NewFieldCommands(fields FieldRepository) FieldCommands {
	return &fieldCommandsImpl{fields: fields}
}

func (c *fieldCommandsImpl) CreateField(ctx context.Context, ownerUsername string, input CreateFieldInput) (int64, error) {
	schedule, err := field.NewSchedule(input.Schedule)
	if err != nil {
		return 0, err
	}

	newField, err := field.NewField(
		ownerUsername,
		input.Sport,
		input.Name,
		input.Address,
		input.City,
		input.Sector,
		input.PricePerHour,
		schedule,
	)
	if err != nil {
		return 0, err
	}

	return c.fields.Create(ctx, newField)
}

func (c *fieldCommandsImpl) UpdateField(ctx context.Context, ownerUsername string, fieldID int64, pricePerHour float64, schedule string) error {
	parsed, err := field.NewSchedule(schedule)
	if err != nil {
		return err
	}

	owned, err := c.ownedField(ctx, ownerUsername, fieldID)
	if err != nil {
		return err
	}
	if err := owned.UpdatePricing(pricePerHour, parsed); err != nil {
		return err
	}

	return c.fields.UpdatePricing(ctx, owned.ID(), owned.PricePerHour(), owned.Schedule().String())
}

func (c *fieldCommandsImpl) DeleteField(ctx context.Context, ownerUsername string, fieldID int64) error {
	owned, err := c.ownedField(ctx, ownerUsername, fieldID)
	if err != nil {
		return err
	}
	return c.fields.Delete(ctx, owned.ID())
}

func (c *fieldCommandsImpl) ownedField(ctx context.Context, ownerUsername string, fieldID int64) (*field.Field, error) {
	f, err := c.fields.Find(ctx, fieldID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrFieldMissing)
		}
		return nil, err
	}
	if !f.IsOwnedBy(ownerUsername) {
		return nil, ErrNotFieldOwner
	}
	return f, nil
}
