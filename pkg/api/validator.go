package api

import (
	"errors"
	"fmt"
	"math"
)

func (p DirectionPayload) Validate() error {
	if p.Dx == 0 && p.Dy == 0 {
		return errors.New("movement vector cannot be zero")
	}
	if p.Dx < -1 || p.Dx > 1 || p.Dy < -1 || p.Dy > 1 {
		return errors.New("movement step too large")
	}
	return nil
}

func (s StateView) Validate() error {
	if s.Wood < 0 {
		return fmt.Errorf("wood cannot be negative: %d", s.Wood)
	}
	// в домене дерево хранится как uint32
	if int64(s.Wood) > math.MaxUint32 {
		return fmt.Errorf("wood out of range: %d", s.Wood)
	}
	return nil
}

func (s StepView) Validate() error {
	if s.Action == "" {
		return errors.New("step action is required")
	}
	if s.Direction != nil {
		return s.Direction.Validate()
	}
	return nil
}

func (r PlanRequest) Validate() error {
	switch r.Type {
	case "", TypePlan, TypeExecute:
	default:
		return fmt.Errorf("unknown request type %q", r.Type)
	}
	if err := r.Initial.Validate(); err != nil {
		return fmt.Errorf("initial: %w", err)
	}
	if err := r.Goal.Validate(); err != nil {
		return fmt.Errorf("goal: %w", err)
	}
	if r.MaxExpansions < 0 {
		return errors.New("maxExpansions cannot be negative")
	}
	for i, step := range r.Steps {
		if err := step.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}
