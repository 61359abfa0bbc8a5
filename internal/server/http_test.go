package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/FreddyWordingham/GOAP/pkg/api"

	"github.com/gorilla/websocket"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New(NewPlanService(0), "0").Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTP_Health(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Errorf("Expected 200 ok, got %d %q", resp.StatusCode, body)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Error("CORS header missing")
	}
}

func TestHTTP_Version(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/version")
	if err != nil {
		t.Fatalf("GET /version: %v", err)
	}
	defer resp.Body.Close()

	var info map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if _, ok := info["version"]; !ok {
		t.Errorf("Expected a version field, got %v", info)
	}
}

func TestHTTP_Plan(t *testing.T) {
	srv := newTestServer(t)

	t.Run("Valid request", func(t *testing.T) {
		req := api.PlanRequest{
			Initial: api.StateView{EnemyAlive: true},
			Goal:    api.StateView{Position: api.PositionPayload{X: 2, Y: 0}, EnemyAlive: true},
		}
		body, _ := json.Marshal(req)

		resp, err := http.Post(srv.URL+"/plan", "application/json", bytes.NewReader(body))
		if err != nil {
			t.Fatalf("POST /plan: %v", err)
		}
		defer resp.Body.Close()

		var out api.PlanResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if resp.StatusCode != http.StatusOK || out.Status != "FOUND" {
			t.Fatalf("Expected 200 FOUND, got %d %+v", resp.StatusCode, out)
		}
		if len(out.Steps) != 2 || out.Steps[0].Label != "Walk 1,0" {
			t.Errorf("Expected two straight walks, got %+v", out.Steps)
		}
	})

	t.Run("Broken JSON", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/plan", "application/json", strings.NewReader("{"))
		if err != nil {
			t.Fatalf("POST /plan: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", resp.StatusCode)
		}
	})

	t.Run("Invalid request", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/plan", "application/json", strings.NewReader(`{"maxExpansions": -5}`))
		if err != nil {
			t.Fatalf("POST /plan: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", resp.StatusCode)
		}
	})

	t.Run("Wrong method", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/plan")
		if err != nil {
			t.Fatalf("GET /plan: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusMethodNotAllowed {
			t.Errorf("Expected 405, got %d", resp.StatusCode)
		}
	})
}

func TestWebSocket_PlanRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	if err := conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
		t.Fatalf("SetReadDeadline: %v", err)
	}

	// 1. A regular plan request
	req := api.PlanRequest{
		ID:      "first",
		Initial: api.StateView{EnemyAlive: true},
		Goal:    api.StateView{HasWeapon: true},
	}
	if err := conn.WriteJSON(req); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var resp api.PlanResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if resp.ID != "first" || resp.Status != "FOUND" || len(resp.Steps) != 2 {
		t.Fatalf("Unexpected response %+v", resp)
	}

	// 2. Broken JSON keeps the connection alive
	if err := conn.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}
	var errResp api.PlanResponse
	if err := conn.ReadJSON(&errResp); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if errResp.Type != api.TypeError {
		t.Errorf("Expected ERROR, got %+v", errResp)
	}

	// 3. Still usable afterwards
	req.ID = "second"
	if err := conn.WriteJSON(req); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var again api.PlanResponse
	if err := conn.ReadJSON(&again); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if again.ID != "second" || again.Status != "FOUND" {
		t.Errorf("Unexpected response %+v", again)
	}
}

func TestServer_Shutdown(t *testing.T) {
	srv := New(NewPlanService(0), "0")

	done := make(chan error, 1)
	go func() { done <- srv.Run() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run should return nil after Shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Shutdown")
	}
}
