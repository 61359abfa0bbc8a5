package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/FreddyWordingham/GOAP/internal/version"
	"github.com/FreddyWordingham/GOAP/pkg/api"
	"github.com/FreddyWordingham/GOAP/pkg/logger"
)

// maxBodySize - лимит тела POST /plan
const maxBodySize = 1 << 16

type Server struct {
	Planner *PlanService
	Port    string

	httpServer *http.Server
}

func New(planner *PlanService, port string) *Server {
	s := &Server{
		Planner: planner,
		Port:    port,
	}
	s.httpServer = &http.Server{
		Addr:    ":" + port,
		Handler: s.Handler(),
	}
	return s
}

// Handler собирает все роуты. Вынесено из Run, чтобы тестировать через httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/plan", enableCORS(s.handlePlan))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	return mux
}

// Run запускает HTTP сервер и блокируется до ошибки или Shutdown.
// После Shutdown возвращает nil.
func (s *Server) Run() error {
	logger.Log.Infof("GOAP planner server running on :%s", s.Port)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown перестает принимать соединения и ждет завершения текущих запросов (до ctx).
// WebSocket-соединения захвачены у http.Server и закрываются своими пампами.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next(w, r)
	}
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("Upgrade error:", err)
		return
	}

	client := NewClient(s.Planner, conn)

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

// handlePlan - синхронный вариант: один запрос, один ответ
func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req api.PlanRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("", err))
		return
	}

	resp := s.Planner.Handle(req)
	status := http.StatusOK
	if resp.Type == api.TypeError {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, version.Info())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.WithError(err).Debug("write json response failed")
	}
}
