package player

import (
	"errors"
	"fmt"
)

var ErrNegativeAmount = errors.New("amount must not be negative")

// ReadOnlyStatus is the view of a player handed to code that should not
// change it, such as the HUD.
type ReadOnlyStatus interface {
	Health() int
}

// Status holds mutable player state.
type Status struct {
	health int
}

func NewStatus(health int) *Status {
	return &Status{health: health}
}

func (s *Status) Health() int { return s.health }

func (s *Status) AddHealth(value int) error {
	if value < 0 {
		return fmt.Errorf("add health %d: %w", value, ErrNegativeAmount)
	}
	s.health += value
	return nil
}

func (s *Status) RemoveHealth(value int) error {
	if value < 0 {
		return fmt.Errorf("remove health %d: %w", value, ErrNegativeAmount)
	}
	s.health -= value
	return nil
}
