package domain

import (
	"fmt"
	"strings"
)

// ActionType - Внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionWalk
	ActionPickUpWeapon
	ActionAttackEnemy
	ActionPickUpWood
	ActionLightBonfire
)

// Маппинг для конвертации JSON/YAML -> Domain
var actionStringToType = map[string]ActionType{
	"WALK":          ActionWalk,
	"PICKUP_WEAPON": ActionPickUpWeapon,
	"ATTACK_ENEMY":  ActionAttackEnemy,
	"PICKUP_WOOD":   ActionPickUpWood,
	"LIGHT_BONFIRE": ActionLightBonfire,
}

// Маппинг для логов Domain -> String
var actionTypeToString = map[ActionType]string{
	ActionWalk:         "WALK",
	ActionPickUpWeapon: "PICKUP_WEAPON",
	ActionAttackEnemy:  "ATTACK_ENEMY",
	ActionPickUpWood:   "PICKUP_WOOD",
	ActionLightBonfire: "LIGHT_BONFIRE",
}

// ParseActionType конвертирует строку в ActionType (регистр не важен)
func ParseActionType(s string) ActionType {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if val, ok := actionStringToType[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (t ActionType) String() string {
	if val, ok := actionTypeToString[t]; ok {
		return val
	}
	return "UNKNOWN"
}

// Action - одно примитивное действие агента.
// Набор вариантов закрыт (см. ActionType), параметры есть только у Walk.
// Действие не хранит ссылок на состояние.
type Action struct {
	Type  ActionType
	Delta Position // только для ActionWalk
}

var (
	PickUpWeapon = Action{Type: ActionPickUpWeapon}
	AttackEnemy  = Action{Type: ActionAttackEnemy}
	PickUpWood   = Action{Type: ActionPickUpWood}
	LightBonfire = Action{Type: ActionLightBonfire}
)

// Walk создает шаг на (dx, dy)
func Walk(dx, dy int) Action {
	return Action{Type: ActionWalk, Delta: Position{X: dx, Y: dy}}
}

// WalkDeltas - все 8 единичных шагов в порядке перебора (dx снаружи, dy внутри, без (0,0))
var WalkDeltas = func() []Position {
	deltas := make([]Position, 0, 8)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			deltas = append(deltas, Position{X: dx, Y: dy})
		}
	}
	return deltas
}()

// CanExecute - предусловие действия. Чистая функция, ничего не меняет.
func (a Action) CanExecute(s WorldState) bool {
	switch a.Type {
	case ActionWalk:
		return true
	case ActionPickUpWeapon:
		return !s.HasWeapon
	case ActionAttackEnemy:
		return s.HasWeapon && s.EnemyAlive
	case ActionPickUpWood:
		return true
	case ActionLightBonfire:
		return s.Wood >= WoodForBonfire
	default:
		return false
	}
}

// Execute возвращает новое состояние после действия.
// Предусловие НЕ проверяется: вызывающий обязан сначала спросить CanExecute.
func (a Action) Execute(s WorldState) WorldState {
	switch a.Type {
	case ActionWalk:
		s.PlayerPos = s.PlayerPos.Add(a.Delta)
	case ActionPickUpWeapon:
		s.HasWeapon = true
	case ActionAttackEnemy:
		if s.HasWeapon {
			s.EnemyAlive = false
		}
	case ActionPickUpWood:
		s.Wood++
	case ActionLightBonfire:
		s.HasBonfire = true
		s.Wood = 0
	}
	return s
}

// String возвращает читаемое название действия (для отчетов)
func (a Action) String() string {
	switch a.Type {
	case ActionWalk:
		return fmt.Sprintf("Walk %d,%d", a.Delta.X, a.Delta.Y)
	case ActionPickUpWeapon:
		return "PickUpWeapon"
	case ActionAttackEnemy:
		return "AttackEnemy"
	case ActionPickUpWood:
		return "PickUpWood"
	case ActionLightBonfire:
		return "LightBonfire"
	default:
		return "Unknown"
	}
}

// PossibleActions перечисляет действия, доступные в состоянии s, в фиксированном порядке:
// PickUpWeapon?, AttackEnemy?, PickUpWood, LightBonfire?, затем 8 шагов.
func PossibleActions(s WorldState) []Action {
	actions := make([]Action, 0, 4+len(WalkDeltas))

	if !s.HasWeapon {
		actions = append(actions, PickUpWeapon)
	}
	if s.HasWeapon && s.EnemyAlive {
		actions = append(actions, AttackEnemy)
	}

	actions = append(actions, PickUpWood)

	if s.Wood >= WoodForBonfire {
		actions = append(actions, LightBonfire)
	}

	for _, d := range WalkDeltas {
		actions = append(actions, Action{Type: ActionWalk, Delta: d})
	}

	return actions
}

// ActionSource - генератор действий для состояния. Позволяет подменять набор действий,
// не трогая поисковый движок.
type ActionSource func(s WorldState) []Action

// Restrict возвращает PossibleActions без указанных типов действий
func Restrict(disabled ...ActionType) ActionSource {
	if len(disabled) == 0 {
		return PossibleActions
	}

	blocked := make(map[ActionType]bool, len(disabled))
	for _, t := range disabled {
		blocked[t] = true
	}

	return func(s WorldState) []Action {
		all := PossibleActions(s)
		allowed := all[:0]
		for _, a := range all {
			if !blocked[a.Type] {
				allowed = append(allowed, a)
			}
		}
		return allowed
	}
}
