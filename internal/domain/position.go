package domain

import "fmt"

// Position - координаты на сетке. Используется и как позиция игрока, и как вектор шага.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Add возвращает новую позицию, сдвинутую на вектор d (покомпонентно)
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// ManhattanTo возвращает манхэттенское расстояние |dx| + |dy|
func (p Position) ManhattanTo(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// ChebyshevTo возвращает минимальное число шагов с диагоналями: max(|dx|, |dy|)
func (p Position) ChebyshevTo(other Position) int {
	return max(abs(p.X-other.X), abs(p.Y-other.Y))
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
