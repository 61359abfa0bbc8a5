package planner

import "github.com/FreddyWordingham/GOAP/internal/domain"

// Config хранит параметры планировщика
type Config struct {
	// MaxExpansions - лимит раскрытий узлов. 0 означает "без лимита":
	// поиск идет до цели или до исчерпания фронтира.
	MaxExpansions int

	// Actions - генератор доступных действий. nil означает domain.PossibleActions.
	Actions domain.ActionSource
}

// NewConfig создает конфиг по умолчанию (полный набор действий, без лимита)
func NewConfig() Config {
	return Config{
		MaxExpansions: 0,
		Actions:       domain.PossibleActions,
	}
}
