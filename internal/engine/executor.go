package engine

import (
	"errors"
	"fmt"

	"github.com/FreddyWordingham/GOAP/internal/domain"
	"github.com/FreddyWordingham/GOAP/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ErrActionNotApplicable - предусловие действия не выполнено в текущем состоянии
var ErrActionNotApplicable = errors.New("action not applicable")

// Step - одна строка трассы исполнения плана
type Step struct {
	Index  int
	Action domain.Action
	Before domain.WorldState
	After  domain.WorldState
}

// Trace - результат исполнения плана: все шаги и итоговое состояние
type Trace struct {
	Initial domain.WorldState
	Steps   []Step
	Final   domain.WorldState
}

// Execute последовательно применяет действия плана к initial.
// Перед каждым шагом проверяется CanExecute; при нарушении возвращается
// трасса до проблемного шага и ошибка, оборачивающая ErrActionNotApplicable.
func Execute(initial domain.WorldState, plan []domain.Action) (Trace, error) {
	trace := Trace{
		Initial: initial,
		Steps:   make([]Step, 0, len(plan)),
		Final:   initial,
	}

	current := initial
	for i, action := range plan {
		if !action.CanExecute(current) {
			return trace, fmt.Errorf("step %d %q in %s: %w", i, action.String(), current, ErrActionNotApplicable)
		}

		next := action.Execute(current)
		trace.Steps = append(trace.Steps, Step{
			Index:  i,
			Action: action,
			Before: current,
			After:  next,
		})

		logger.Log.WithFields(logrus.Fields{
			"component": "executor",
			"step":      i,
			"action":    action.String(),
		}).Debugf("%s -> %s", current, next)

		current = next
		trace.Final = current
	}

	return trace, nil
}

// StateAt возвращает состояние после шага i. i < 0 означает начальное состояние.
func (t Trace) StateAt(i int) domain.WorldState {
	if i < 0 || len(t.Steps) == 0 {
		return t.Initial
	}
	if i >= len(t.Steps) {
		return t.Final
	}
	return t.Steps[i].After
}
