package server

import (
	"errors"
	"fmt"

	"github.com/FreddyWordingham/GOAP/internal/domain"
	"github.com/FreddyWordingham/GOAP/internal/engine"
	"github.com/FreddyWordingham/GOAP/internal/planner"
	"github.com/FreddyWordingham/GOAP/pkg/api"
	"github.com/FreddyWordingham/GOAP/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Статусы ответа на EXECUTE
const (
	ExecuteOK            = "OK"
	ExecuteNotApplicable = "NOT_APPLICABLE"
	ExecuteGoalMissed    = "GOAL_NOT_REACHED"
)

// PlanService обрабатывает запросы планирования. Каждый запрос получает
// собственный вызов планировщика, общего изменяемого состояния нет.
type PlanService struct {
	// MaxExpansions - серверный потолок раскрытий. Запрос может только уменьшить его.
	// 0 - без потолка.
	MaxExpansions int
}

func NewPlanService(maxExpansions int) *PlanService {
	return &PlanService{MaxExpansions: maxExpansions}
}

// Handle выполняет запрос и всегда возвращает ответ (ошибки - как Type ERROR)
func (s *PlanService) Handle(req api.PlanRequest) api.PlanResponse {
	if err := req.Validate(); err != nil {
		return errorResponse(req.ID, err)
	}

	var (
		resp api.PlanResponse
		err  error
	)
	switch req.Type {
	case api.TypeExecute:
		resp, err = s.execute(req)
	default:
		resp, err = s.plan(req)
	}
	if err != nil {
		return errorResponse(req.ID, err)
	}
	resp.ID = req.ID
	return resp
}

func (s *PlanService) config(req api.PlanRequest) (planner.Config, error) {
	disabled, err := toActionTypes(req.DisabledActions)
	if err != nil {
		return planner.Config{}, err
	}

	cfg := planner.NewConfig()
	cfg.Actions = domain.Restrict(disabled...)
	cfg.MaxExpansions = s.MaxExpansions
	if req.MaxExpansions > 0 && (s.MaxExpansions == 0 || req.MaxExpansions < s.MaxExpansions) {
		cfg.MaxExpansions = req.MaxExpansions
	}
	return cfg, nil
}

func (s *PlanService) plan(req api.PlanRequest) (api.PlanResponse, error) {
	cfg, err := s.config(req)
	if err != nil {
		return api.PlanResponse{}, err
	}

	initial, goal := toState(req.Initial), toState(req.Goal)
	res := planner.New(cfg).Solve(initial, goal)

	trace, err := engine.Execute(initial, res.Actions)
	if err != nil {
		// Планировщик проверяет CanExecute перед каждым шагом, сюда попадать не должны
		return api.PlanResponse{}, fmt.Errorf("planner produced an invalid plan: %w", err)
	}
	final := toStateView(trace.Final)

	logger.Log.WithFields(logrus.Fields{
		"component": "plan_service",
		"request":   req.ID,
		"status":    res.Status.String(),
		"length":    len(res.Actions),
		"expanded":  res.Expanded,
	}).Info("Plan request served")

	return api.PlanResponse{
		Type:     api.TypePlan,
		Status:   res.Status.String(),
		Steps:    toStepViews(res.Actions),
		Cost:     res.Cost,
		Expanded: res.Expanded,
		Final:    &final,
	}, nil
}

func (s *PlanService) execute(req api.PlanRequest) (api.PlanResponse, error) {
	plan := make([]domain.Action, 0, len(req.Steps))
	for i, step := range req.Steps {
		a, err := toAction(step)
		if err != nil {
			return api.PlanResponse{}, fmt.Errorf("step %d: %w", i, err)
		}
		plan = append(plan, a)
	}

	trace, err := engine.Execute(toState(req.Initial), plan)
	final := toStateView(trace.Final)
	resp := api.PlanResponse{
		Type:   api.TypeExecute,
		Status: ExecuteOK,
		Steps:  traceSteps(trace),
		Cost:   len(trace.Steps) * domain.StepCost,
		Final:  &final,
	}

	if err != nil {
		if !errors.Is(err, engine.ErrActionNotApplicable) {
			return api.PlanResponse{}, err
		}
		resp.Status = ExecuteNotApplicable
		resp.Error = err.Error()
		return resp, nil
	}

	if !trace.Final.MatchesGoal(toState(req.Goal)) {
		resp.Status = ExecuteGoalMissed
	}
	return resp, nil
}

func errorResponse(id string, err error) api.PlanResponse {
	logger.Log.WithError(err).WithField("request", id).Warn("Rejected plan request")
	return api.PlanResponse{
		Type:  api.TypeError,
		ID:    id,
		Steps: []api.StepView{},
		Error: err.Error(),
	}
}
