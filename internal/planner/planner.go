// Package planner строит план действий A*-поиском по неявному графу состояний:
// ребра графа - это все действия, применимые к состоянию.
package planner

import (
	"container/heap"
	"slices"

	"github.com/FreddyWordingham/GOAP/internal/domain"
	"github.com/FreddyWordingham/GOAP/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Planner - A*-планировщик. Не хранит состояния между вызовами,
// поэтому один экземпляр можно использовать из нескольких горутин.
type Planner struct {
	cfg Config
}

// New создает планировщик с заданным конфигом
func New(cfg Config) *Planner {
	if cfg.Actions == nil {
		cfg.Actions = domain.PossibleActions
	}
	return &Planner{cfg: cfg}
}

// Plan - упрощенный вход: конфиг по умолчанию, только список действий.
// Пустой список означает либо "цель уже достигнута", либо "плана нет" (см. Solve).
func Plan(initial, goal domain.WorldState) []domain.Action {
	return New(NewConfig()).Plan(initial, goal)
}

// Plan возвращает упорядоченный список действий от initial к goal
func (p *Planner) Plan(initial, goal domain.WorldState) []domain.Action {
	return p.Solve(initial, goal).Actions
}

// link - откуда мы пришли в состояние и каким действием
type link struct {
	prev   domain.WorldState
	action domain.Action
}

// Solve выполняет поиск и возвращает план вместе со статусом и статистикой.
//
// Закрытого множества нет: уже раскрытое состояние снова попадает во фронтир,
// если к нему нашелся более дешевый путь.
func (p *Planner) Solve(initial, goal domain.WorldState) Result {
	pq := make(frontier, 0)
	heap.Init(&pq)

	costSoFar := map[domain.WorldState]int{initial: 0}
	cameFrom := make(map[domain.WorldState]link)

	var seq uint64
	pq.push(initial, 0, Heuristic(initial, goal), seq)

	res := Result{Actions: []domain.Action{}, Status: StatusNoPlan, Pushed: 1}

	for pq.Len() > 0 {
		current := pq.pop().State

		if current.MatchesGoal(goal) {
			res.Actions = reconstruct(cameFrom, current)
			res.Cost = costSoFar[current]
			res.Status = StatusFound
			if len(res.Actions) == 0 {
				res.Status = StatusAlreadySatisfied
			}
			p.report(res)
			return res
		}

		if p.cfg.MaxExpansions > 0 && res.Expanded >= p.cfg.MaxExpansions {
			res.Status = StatusLimitReached
			p.report(res)
			return res
		}
		res.Expanded++

		base := costSoFar[current]
		for _, action := range p.cfg.Actions(current) {
			if !action.CanExecute(current) {
				continue
			}
			next := action.Execute(current)
			tentative := base + domain.StepCost

			if known, seen := costSoFar[next]; seen && tentative >= known {
				continue
			}

			costSoFar[next] = tentative
			seq++
			pq.push(next, tentative, tentative+Heuristic(next, goal), seq)
			cameFrom[next] = link{prev: current, action: action}
			res.Pushed++
		}
	}

	p.report(res)
	return res
}

// reconstruct идет по цепочке cameFrom от конца к начальному состоянию (у него нет предка)
func reconstruct(cameFrom map[domain.WorldState]link, end domain.WorldState) []domain.Action {
	plan := []domain.Action{}
	current := end
	for {
		step, ok := cameFrom[current]
		if !ok {
			break
		}
		plan = append(plan, step.action)
		current = step.prev
	}
	slices.Reverse(plan)
	return plan
}

func (p *Planner) report(res Result) {
	logger.Log.WithFields(logrus.Fields{
		"component": "planner",
		"status":    res.Status.String(),
		"length":    len(res.Actions),
		"cost":      res.Cost,
		"expanded":  res.Expanded,
		"pushed":    res.Pushed,
	}).Debug("search finished")
}
