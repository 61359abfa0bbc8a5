package planner

import "github.com/FreddyWordingham/GOAP/internal/domain"

// Heuristic оценивает оставшуюся стоимость: манхэттенское расстояние до цели
// плюс по единице за каждый отличающийся флаг (оружие, враг, костер).
// Дерево не учитывается, как и в MatchesGoal.
//
// Каждый флаг переключается ровно одним действием. При расширении набора действий
// эту форму нужно сохранять, иначе оценка начнет завышать стоимость.
func Heuristic(s, goal domain.WorldState) int {
	cost := s.PlayerPos.ManhattanTo(goal.PlayerPos)
	if s.HasWeapon != goal.HasWeapon {
		cost++
	}
	if s.EnemyAlive != goal.EnemyAlive {
		cost++
	}
	if s.HasBonfire != goal.HasBonfire {
		cost++
	}
	return cost
}
