package domain

import "fmt"

// WorldState - полный снимок мира. Это узел графа поиска.
//
// Структура сравнима (comparable), поэтому используется как ключ map напрямую:
// равенство и хеш покрывают ВСЕ поля, включая Wood. Два состояния, отличающиеся
// только количеством дерева, - это разные узлы графа.
//
// Состояние - значение. Действия никогда не меняют его на месте,
// а возвращают новую копию (см. Action.Execute).
type WorldState struct {
	PlayerPos  Position `json:"position" yaml:"position"`
	HasWeapon  bool     `json:"hasWeapon" yaml:"has_weapon"`
	EnemyAlive bool     `json:"enemyAlive" yaml:"enemy_alive"`
	Wood       uint32   `json:"wood" yaml:"wood"`
	HasBonfire bool     `json:"hasBonfire" yaml:"has_bonfire"`
}

// Equal - строгое структурное равенство по всем полям.
// Именно это отношение используется для дедупликации узлов.
func (s WorldState) Equal(other WorldState) bool {
	return s == other
}

// MatchesGoal - ослабленное сравнение для проверки достижения цели.
// Количество дерева игнорируется. Никогда не используйте его как ключ.
func (s WorldState) MatchesGoal(goal WorldState) bool {
	return s.PlayerPos == goal.PlayerPos &&
		s.HasWeapon == goal.HasWeapon &&
		s.EnemyAlive == goal.EnemyAlive &&
		s.HasBonfire == goal.HasBonfire
}

func (s WorldState) String() string {
	return fmt.Sprintf("{pos:%s weapon:%t enemy:%t wood:%d bonfire:%t}",
		s.PlayerPos, s.HasWeapon, s.EnemyAlive, s.Wood, s.HasBonfire)
}
