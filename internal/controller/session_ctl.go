package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"bizops/internal/middleware"
	"bizops/internal/sessionsync"
	"bizops/pkg/apperr"
	"bizops/pkg/response"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = wsPongWait * 9 / 10
	wsMaxMessage = 64 * 1024
)

// SessionController relays storage events between a user's open tabs.
type SessionController struct {
	hub      *sessionsync.Hub
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

func NewSessionController(hub *sessionsync.Hub, allowedOrigins []string, logger *zap.Logger) *SessionController {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	return &SessionController{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				if _, ok := allowed["*"]; ok {
					return true
				}
				_, ok := allowed[origin]
				return ok
			},
		},
	}
}

// Connect upgrades to a websocket. Every StorageEvent the tab sends is
// rebroadcast to the caller's other connected tabs, never to another user's.
// @Summary Cross-tab session sync
// @Tags Session
// @Router /api/session/ws [get]
func (ctl *SessionController) Connect(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok || caller.ID == "" {
		response.Fail(c, apperr.Unauthorized())
		return
	}

	ws, err := ctl.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		ctl.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer ws.Close()

	sub := ctl.hub.Subscribe(caller.ID)
	defer sub.Close()
	ctl.logger.Debug("session sync connected", zap.String("user_id", caller.ID))

	done := make(chan struct{})
	go ctl.writeLoop(ws, sub, done)
	defer close(done)

	ws.SetReadLimit(wsMaxMessage)
	_ = ws.SetReadDeadline(time.Now().Add(wsPongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		var ev sessionsync.StorageEvent
		if err := ws.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				ctl.logger.Debug("session sync read failed", zap.Error(err))
			}
			return
		}
		if ev.Key == "" {
			continue
		}
		ctl.hub.Publish(sub, ev)
	}
}

func (ctl *SessionController) writeLoop(ws *websocket.Conn, sub *sessionsync.Subscription, done <-chan struct{}) {
	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case ev, ok := <-sub.Events():
			if !ok {
				return
			}
			_ = ws.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := ws.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			_ = ws.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
