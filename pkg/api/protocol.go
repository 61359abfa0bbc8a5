package api

// Типы сообщений
const (
	TypePlan    = "PLAN"    // построить план от Initial к Goal
	TypeExecute = "EXECUTE" // исполнить присланный план от Initial и вернуть итог
	TypeError   = "ERROR"
)

// --- КЛИЕНТ -> СЕРВЕР ---

// PlanRequest это корневой объект запроса. Один и тот же формат используется
// и для POST /plan, и для каждого сообщения в WebSocket.
type PlanRequest struct {
	// Type тип запроса: PLAN (по умолчанию) или EXECUTE.
	Type string `json:"type,omitempty"`

	// ID произвольный идентификатор запроса. Возвращается в ответе как есть,
	// чтобы клиент мог сопоставить ответы при нескольких запросах в одном сокете.
	ID string `json:"id,omitempty"`

	Initial StateView `json:"initial"`
	Goal    StateView `json:"goal"`

	// MaxExpansions лимит раскрытий узлов. 0 - без лимита.
	MaxExpansions int `json:"maxExpansions,omitempty"`

	// DisabledActions типы действий, которые нельзя использовать (e.g. "WALK").
	DisabledActions []string `json:"disabledActions,omitempty"`

	// Steps план для исполнения (только для EXECUTE).
	Steps []StepView `json:"steps,omitempty"`
}

// --- СЕРВЕР -> КЛИЕНТ ---

// PlanResponse ответ на PlanRequest.
type PlanResponse struct {
	// Type PLAN, EXECUTE или ERROR.
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`

	// Status итог поиска: FOUND, ALREADY_SATISFIED, NO_PLAN, LIMIT_REACHED.
	// Для EXECUTE: OK, NOT_APPLICABLE или GOAL_NOT_REACHED.
	Status string `json:"status,omitempty"`

	// Steps упорядоченный план. Пустой список - план не нужен или не найден (см. Status).
	Steps []StepView `json:"steps"`

	Cost     int `json:"cost"`
	Expanded int `json:"expanded,omitempty"`

	// Final состояние после исполнения плана.
	Final *StateView `json:"final,omitempty"`

	// Error текст ошибки для Type == ERROR или неисполнимого плана.
	Error string `json:"error,omitempty"`
}

// --- Общие DTO ---

// StateView DTO состояния мира.
type StateView struct {
	Position   PositionPayload `json:"position"`
	HasWeapon  bool            `json:"hasWeapon"`
	EnemyAlive bool            `json:"enemyAlive"`
	Wood       int             `json:"wood"`
	HasBonfire bool            `json:"hasBonfire"`
}

// StepView один шаг плана.
type StepView struct {
	Index int `json:"index"`

	// Label человекочитаемое название ("Walk 1,1", "PickUpWood").
	Label string `json:"label,omitempty"`

	// Action тип действия (WALK, PICKUP_WEAPON, ...).
	Action string `json:"action"`

	// Direction только для WALK.
	Direction *DirectionPayload `json:"direction,omitempty"`
}

// --- Payloads ---

// DirectionPayload вектор шага (WALK).
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// PositionPayload точка на карте.
type PositionPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}
