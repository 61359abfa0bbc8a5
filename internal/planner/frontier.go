package planner

import (
	"container/heap"

	"github.com/FreddyWordingham/GOAP/internal/domain"
)

// frontierItem обертка для элемента очереди приоритетов
type frontierItem struct {
	State    domain.WorldState
	Priority int    // f = g + h. Чем меньше, тем раньше раскрываем.
	Cost     int    // g на момент добавления
	Seq      uint64 // порядковый номер добавления (для стабильного порядка)
	Index    int    // Индекс в куче
}

// frontier реализует heap.Interface.
// Порядок: меньший Priority, затем больший Cost (глубже - ближе к цели), затем раньше добавленный.
type frontier []*frontierItem

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.Cost != b.Cost {
		return a.Cost > b.Cost
	}
	return a.Seq < b.Seq
}

func (pq frontier) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *frontier) Push(x interface{}) {
	n := len(*pq)
	item := x.(*frontierItem)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // избегаем утечки памяти
	item.Index = -1 // для безопасности
	*pq = old[0 : n-1]
	return item
}

// push добавляет состояние с приоритетом, присваивая ему следующий порядковый номер
func (pq *frontier) push(s domain.WorldState, cost, priority int, seq uint64) {
	heap.Push(pq, &frontierItem{State: s, Priority: priority, Cost: cost, Seq: seq})
}

// pop извлекает элемент с наименьшим приоритетом
func (pq *frontier) pop() *frontierItem {
	return heap.Pop(pq).(*frontierItem)
}
