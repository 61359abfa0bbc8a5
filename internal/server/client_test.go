package server

import (
	"testing"
	"time"

	"github.com/FreddyWordingham/GOAP/pkg/api"
)

func TestClient_SendAfterWriterStopped(t *testing.T) {
	c := NewClient(NewPlanService(0), nil)
	c.Send = make(chan api.PlanResponse) // nobody reads it

	close(c.done)

	result := make(chan bool, 1)
	go func() { result <- c.send(api.PlanResponse{ID: "late"}) }()

	select {
	case ok := <-result:
		if ok {
			t.Error("send must report failure once the writer is gone")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("send blocked after the writer stopped")
	}
}

func TestClient_SendBuffered(t *testing.T) {
	c := NewClient(NewPlanService(0), nil)

	if !c.send(api.PlanResponse{ID: "first"}) {
		t.Fatal("send should succeed while the buffer has room")
	}
	if got := <-c.Send; got.ID != "first" {
		t.Errorf("Expected response first, got %q", got.ID)
	}
}
