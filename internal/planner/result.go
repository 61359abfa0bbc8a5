package planner

import "github.com/FreddyWordingham/GOAP/internal/domain"

// Status - чем закончился поиск
type Status uint8

const (
	// StatusNoPlan - фронтир исчерпан, цель недостижима
	StatusNoPlan Status = iota
	// StatusFound - найден непустой план
	StatusFound
	// StatusAlreadySatisfied - начальное состояние уже удовлетворяет цели, план пуст
	StatusAlreadySatisfied
	// StatusLimitReached - поиск остановлен по Config.MaxExpansions
	StatusLimitReached
)

var statusToString = map[Status]string{
	StatusNoPlan:           "NO_PLAN",
	StatusFound:            "FOUND",
	StatusAlreadySatisfied: "ALREADY_SATISFIED",
	StatusLimitReached:     "LIMIT_REACHED",
}

func (s Status) String() string {
	if val, ok := statusToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

// Succeeded возвращает true, если план можно исполнять (включая пустой план для уже достигнутой цели)
func (s Status) Succeeded() bool {
	return s == StatusFound || s == StatusAlreadySatisfied
}

// Result - итог одного вызова Solve
type Result struct {
	Actions  []domain.Action // всегда не nil, пустой если план не нужен или не найден
	Status   Status
	Cost     int // суммарная стоимость плана
	Expanded int // сколько узлов раскрыто
	Pushed   int // сколько записей попало во фронтир
}
