// Package scenario читает описание задачи планирования из YAML:
// начальное состояние, цель, лимиты поиска и отключенные действия.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/FreddyWordingham/GOAP/internal/domain"
	"github.com/FreddyWordingham/GOAP/internal/planner"

	"gopkg.in/yaml.v3"
)

// ErrUnknownAction - в disabled_actions указано несуществующее действие
var ErrUnknownAction = errors.New("unknown action type")

// PlannerSettings - секция planner в файле
type PlannerSettings struct {
	MaxExpansions int `yaml:"max_expansions"`
}

// Scenario - одна задача планирования
type Scenario struct {
	Initial         domain.WorldState `yaml:"initial"`
	Goal            domain.WorldState `yaml:"goal"`
	Planner         PlannerSettings   `yaml:"planner"`
	DisabledActions []string          `yaml:"disabled_actions,omitempty"`
}

// Default возвращает демонстрационную задачу: дойти до (14,7), убить врага и разжечь костер
func Default() Scenario {
	return Scenario{
		Initial: domain.WorldState{
			PlayerPos:  domain.Position{X: 0, Y: 0},
			HasWeapon:  false,
			EnemyAlive: true,
			Wood:       0,
			HasBonfire: false,
		},
		Goal: domain.WorldState{
			PlayerPos:  domain.Position{X: 14, Y: 7},
			HasWeapon:  true,
			EnemyAlive: false,
			Wood:       0,
			HasBonfire: true,
		},
	}
}

// Load читает сценарий из файла
func Load(path string) (Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scenario{}, err
	}
	defer f.Close()

	sc, err := Decode(f)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

// Parse разбирает сценарий из байтов
func Parse(data []byte) (Scenario, error) {
	return Decode(bytes.NewReader(data))
}

// document - файл как он есть: nil-секция значит "секции нет в файле"
type document struct {
	Initial         *domain.WorldState `yaml:"initial"`
	Goal            *domain.WorldState `yaml:"goal"`
	Planner         PlannerSettings    `yaml:"planner"`
	DisabledActions []string           `yaml:"disabled_actions"`
}

// Decode разбирает сценарий из потока. Отсутствующие секции initial/goal
// целиком берутся из Default(); поля внутри указанной секции по умолчанию нулевые.
// Неизвестные поля считаются ошибкой.
func Decode(r io.Reader) (Scenario, error) {
	var doc document

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Scenario{}, fmt.Errorf("failed to decode yaml: %w", err)
	}

	sc := Default()
	if doc.Initial != nil {
		sc.Initial = *doc.Initial
	}
	if doc.Goal != nil {
		sc.Goal = *doc.Goal
	}
	sc.Planner = doc.Planner
	sc.DisabledActions = doc.DisabledActions

	if err := sc.Validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

// Validate проверяет лимиты и названия действий
func (s Scenario) Validate() error {
	if s.Planner.MaxExpansions < 0 {
		return fmt.Errorf("planner.max_expansions must be >= 0, got %d", s.Planner.MaxExpansions)
	}
	_, err := s.disabled()
	return err
}

func (s Scenario) disabled() ([]domain.ActionType, error) {
	types := make([]domain.ActionType, 0, len(s.DisabledActions))
	for _, name := range s.DisabledActions {
		t := domain.ParseActionType(name)
		if t == domain.ActionUnknown {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
		}
		types = append(types, t)
	}
	return types, nil
}

// PlannerConfig собирает конфиг планировщика для этого сценария
func (s Scenario) PlannerConfig() (planner.Config, error) {
	types, err := s.disabled()
	if err != nil {
		return planner.Config{}, err
	}

	cfg := planner.NewConfig()
	cfg.MaxExpansions = s.Planner.MaxExpansions
	cfg.Actions = domain.Restrict(types...)
	return cfg, nil
}

// Marshal сериализует сценарий обратно в YAML (для -dump)
func (s Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
