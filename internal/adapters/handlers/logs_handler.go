package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func (h *Handler) GetLogs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "logs": h.usecase.Logs()})
}

func (h *Handler) ClearLogs(c *gin.Context) {
	h.usecase.ClearLogs()
	h.OK(c, "Журнал очищен")
}

// StreamLogs передает записи журнала по websocket.
// С параметром backlog=1 сначала отправляются уже накопленные записи.
func (h *Handler) StreamLogs(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("Websocket upgrade failed", "error", err)
		return
	}
	clientID := uuid.NewString()
	h.logger.Info("Log stream client connected", "client_id", clientID)

	backlog, entries, cancel := h.usecase.SubscribeLogs(c.Query("backlog") == "1")
	defer func() {
		cancel()
		conn.Close()
		h.logger.Info("Log stream client disconnected", "client_id", clientID)
	}()

	// чтение нужно только для обработки close и pong
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for _, entry := range backlog {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(entry); err != nil {
			return
		}
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case entry, ok := <-entries:
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(entry); err != nil {
				h.logger.Debug("Log stream write failed", "client_id", clientID, "error", err)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}
