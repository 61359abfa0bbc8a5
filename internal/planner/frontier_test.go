package planner

import (
	"container/heap"
	"testing"

	"github.com/FreddyWordingham/GOAP/internal/domain"
)

func TestFrontier(t *testing.T) {
	pq := make(frontier, 0)
	heap.Init(&pq)

	s1 := domain.WorldState{PlayerPos: domain.Position{X: 1}}
	s2 := domain.WorldState{PlayerPos: domain.Position{X: 2}}
	s3 := domain.WorldState{PlayerPos: domain.Position{X: 3}}
	s4 := domain.WorldState{PlayerPos: domain.Position{X: 4}}

	pq.push(s1, 1, 10, 1)
	pq.push(s2, 1, 5, 2)
	pq.push(s3, 3, 10, 3) // same priority as s1 but deeper
	pq.push(s4, 1, 10, 4) // same priority and cost as s1, pushed later

	if pq.Len() != 4 {
		t.Errorf("Expected length 4, got %d", pq.Len())
	}

	want := []domain.WorldState{s2, s3, s1, s4}
	for i, expected := range want {
		got := pq.pop()
		if got.State != expected {
			t.Errorf("Pop #%d: expected %s, got %s", i, expected, got.State)
		}
		if got.Index != -1 {
			t.Errorf("Pop #%d: popped item should have Index -1, got %d", i, got.Index)
		}
	}

	if pq.Len() != 0 {
		t.Errorf("Expected empty frontier, got %d", pq.Len())
	}
}
