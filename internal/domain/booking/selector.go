package booking

import (
	"sportfields/internal/domain/availability"
	"sportfields/internal/pkg/errs"
)

// MaxSlotHours caps a single booking at three contiguous hours.
const MaxSlotHours = 3

var (
	ErrNotAvailable  = errs.New("cell is not available")
	ErrWrongField    = errs.New("selection must stay on a single field")
	ErrSlotTooLong   = errs.New("selection cannot exceed three hours")
	ErrNotDragging   = errs.New("no drag in progress")
	ErrAlreadyActive = errs.New("drag already in progress")
)

// Slot is a committed contiguous hour range on one field, half-open:
// EndHour is one past the last selected cell.
type Slot struct {
	FieldID   int64
	StartHour int
	EndHour   int
}

func (s Slot) Hours() int {
	return s.EndHour - s.StartHour
}

type state int

const (
	stateIdle state = iota
	stateDragging
)

// Selector turns pointer gestures over occupancy grids into a candidate
// slot. All selection state lives in this one struct. Contiguity is
// structural: only cells adjacent to the current selection extend it,
// so a non-contiguous selection cannot be built in the first place.
// A Selector is single-owner and not safe for concurrent use.
type Selector struct {
	state   state
	fieldID int64
	lo, hi  int // inclusive selected hour range while dragging
	vectors map[int64]availability.Vector
}

// NewSelector builds a selector over the occupancy vectors of the
// fields currently rendered, keyed by field id.
func NewSelector(vectors map[int64]availability.Vector) *Selector {
	return &Selector{
		state:   stateIdle,
		vectors: vectors,
	}
}

func (s *Selector) IsDragging() bool {
	return s.state == stateDragging
}

// Selected returns the hours currently picked, in ascending order.
func (s *Selector) Selected() []int {
	if s.state != stateDragging {
		return nil
	}
	hours := make([]int, 0, s.hi-s.lo+1)
	for h := s.lo; h <= s.hi; h++ {
		hours = append(hours, h)
	}
	return hours
}

// Press starts a drag on one cell. Only an available cell can anchor a
// selection.
func (s *Selector) Press(fieldID int64, hour int) error {
	if s.state == stateDragging {
		return ErrAlreadyActive
	}
	if s.stateAt(fieldID, hour) != availability.StateAvailable {
		return ErrNotAvailable
	}

	s.state = stateDragging
	s.fieldID = fieldID
	s.lo, s.hi = hour, hour
	return nil
}

// Extend grows the drag onto a new cell. Any violation aborts the drag
// immediately: the selection reverts and the typed reason is returned.
// Re-entering an already selected cell is a no-op, and a cell that is
// not adjacent to the selection cannot extend it.
func (s *Selector) Extend(fieldID int64, hour int) error {
	if s.state != stateDragging {
		return ErrNotDragging
	}

	if fieldID != s.fieldID {
		s.reset()
		return ErrWrongField
	}
	if hour >= s.lo && hour <= s.hi {
		return nil
	}
	if s.stateAt(fieldID, hour) != availability.StateAvailable {
		s.reset()
		return ErrNotAvailable
	}
	if hour != s.lo-1 && hour != s.hi+1 {
		return nil
	}
	if s.hi-s.lo+1 >= MaxSlotHours {
		s.reset()
		return ErrSlotTooLong
	}

	if hour == s.lo-1 {
		s.lo = hour
	} else {
		s.hi = hour
	}
	return nil
}

// Release commits the drag and yields the candidate slot.
func (s *Selector) Release() (Slot, error) {
	if s.state != stateDragging {
		return Slot{}, ErrNotDragging
	}

	slot := Slot{
		FieldID:   s.fieldID,
		StartHour: s.lo,
		EndHour:   s.hi + 1,
	}
	s.reset()
	return slot, nil
}

// Cancel aborts the drag, reverting every selected cell. Used for a
// pointer release outside any cell, since pointer capture is not
// assumed.
func (s *Selector) Cancel() {
	s.reset()
}

// MarkReserved flips the committed hours to reserved after a successful
// booking so a follow-up drag sees them occupied.
func (s *Selector) MarkReserved(slot Slot) {
	v, ok := s.vectors[slot.FieldID]
	if !ok {
		return
	}
	for h := slot.StartHour; h < slot.EndHour && h < availability.HoursPerDay; h++ {
		v[h] = availability.StateReserved
	}
	s.vectors[slot.FieldID] = v
}

func (s *Selector) stateAt(fieldID int64, hour int) availability.SlotState {
	if hour < 0 || hour >= availability.HoursPerDay {
		return availability.StateClosed
	}
	v, ok := s.vectors[fieldID]
	if !ok {
		return availability.StateClosed
	}
	return v[hour]
}

func (s *Selector) reset() {
	s.state = stateIdle
	s.fieldID = 0
	s.lo, s.hi = 0, 0
}
