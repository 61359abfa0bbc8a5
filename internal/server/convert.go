package server

import (
	"fmt"

	"github.com/FreddyWordingham/GOAP/internal/domain"
	"github.com/FreddyWordingham/GOAP/internal/engine"
	"github.com/FreddyWordingham/GOAP/pkg/api"
)

// toState конвертирует DTO -> Domain. Wood уже проверен на >= 0 валидатором.
func toState(v api.StateView) domain.WorldState {
	return domain.WorldState{
		PlayerPos:  domain.Position{X: v.Position.X, Y: v.Position.Y},
		HasWeapon:  v.HasWeapon,
		EnemyAlive: v.EnemyAlive,
		Wood:       uint32(v.Wood),
		HasBonfire: v.HasBonfire,
	}
}

// toStateView конвертирует Domain -> DTO
func toStateView(s domain.WorldState) api.StateView {
	return api.StateView{
		Position:   api.PositionPayload{X: s.PlayerPos.X, Y: s.PlayerPos.Y},
		HasWeapon:  s.HasWeapon,
		EnemyAlive: s.EnemyAlive,
		Wood:       int(s.Wood),
		HasBonfire: s.HasBonfire,
	}
}

func toStepView(i int, a domain.Action) api.StepView {
	step := api.StepView{
		Index:  i,
		Label:  a.String(),
		Action: a.Type.String(),
	}
	if a.Type == domain.ActionWalk {
		step.Direction = &api.DirectionPayload{Dx: a.Delta.X, Dy: a.Delta.Y}
	}
	return step
}

func toStepViews(plan []domain.Action) []api.StepView {
	steps := make([]api.StepView, 0, len(plan))
	for i, a := range plan {
		steps = append(steps, toStepView(i, a))
	}
	return steps
}

func traceSteps(trace engine.Trace) []api.StepView {
	steps := make([]api.StepView, 0, len(trace.Steps))
	for _, st := range trace.Steps {
		steps = append(steps, toStepView(st.Index, st.Action))
	}
	return steps
}

// toAction конвертирует шаг из запроса в доменное действие
func toAction(s api.StepView) (domain.Action, error) {
	t := domain.ParseActionType(s.Action)
	switch t {
	case domain.ActionUnknown:
		return domain.Action{}, fmt.Errorf("unknown action %q", s.Action)
	case domain.ActionWalk:
		if s.Direction == nil {
			return domain.Action{}, fmt.Errorf("WALK requires a direction")
		}
		if err := s.Direction.Validate(); err != nil {
			return domain.Action{}, err
		}
		return domain.Walk(s.Direction.Dx, s.Direction.Dy), nil
	default:
		return domain.Action{Type: t}, nil
	}
}

func toActionTypes(names []string) ([]domain.ActionType, error) {
	types := make([]domain.ActionType, 0, len(names))
	for _, name := range names {
		t := domain.ParseActionType(name)
		if t == domain.ActionUnknown {
			return nil, fmt.Errorf("unknown action type %q", name)
		}
		types = append(types, t)
	}
	return types, nil
}
