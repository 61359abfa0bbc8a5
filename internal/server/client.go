package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/FreddyWordingham/GOAP/pkg/api"
	"github.com/FreddyWordingham/GOAP/pkg/logger"

	"github.com/gorilla/websocket"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1 << 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и PlanService.
// Запросы обрабатываются по очереди в readPump, ответы уходят через Send в writePump.
type Client struct {
	Planner *PlanService
	Conn    *websocket.Conn
	Send    chan api.PlanResponse

	// done закрывается, когда writePump завершился и ответы больше некому отправить
	done chan struct{}
}

func NewClient(planner *PlanService, conn *websocket.Conn) *Client {
	return &Client{
		Planner: planner,
		Conn:    conn,
		Send:    make(chan api.PlanResponse, 16),
		done:    make(chan struct{}),
	}
}

// readPump читает запросы от клиента
func (c *Client) readPump() {
	defer func() {
		close(c.Send)
		logger.Log.WithField("remote", c.Conn.RemoteAddr().String()).Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	logger.Log.WithField("remote", c.Conn.RemoteAddr().String()).Info("Client connected")

	for {
		var req api.PlanRequest
		err := c.Conn.ReadJSON(&req)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Log.Errorf("WS Error: %v", err)
			}
			// Битый JSON не рвет соединение, остальное - рвет
			if !isDecodeError(err) {
				return
			}
			if !c.send(errorResponse("", err)) {
				return
			}
			continue
		}
		if !c.send(c.Planner.Handle(req)) {
			return
		}
	}
}

// send передает ответ в writePump. false - писатель уже завершился.
func (c *Client) send(resp api.PlanResponse) bool {
	select {
	case c.Send <- resp:
		return true
	case <-c.done:
		return false
	}
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

// writePump отправляет ответы клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(c.done)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
