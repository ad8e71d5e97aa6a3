package handler

import (
	"encoding/json"
	"net/http"

	"lokapasar/internal/infrastructure/websocket"
	"lokapasar/internal/usecase"
	"lokapasar/pkg/logger"

	"github.com/google/uuid"
	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = gorilla.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the storefront UI is served from another origin in development
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WebSocketHandler struct {
	manager        *websocket.Manager
	catalogUseCase *usecase.CatalogUseCase
}

func NewWebSocketHandler(manager *websocket.Manager, catalogUseCase *usecase.CatalogUseCase) *WebSocketHandler {
	return &WebSocketHandler{
		manager:        manager,
		catalogUseCase: catalogUseCase,
	}
}

// HandleConnection upgrades the request and streams query-state snapshots
// to the storefront session, starting with the current state.
func (h *WebSocketHandler) HandleConnection(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("websocket upgrade failed: %v", err)
		return err
	}

	client := &websocket.Client{
		SessionID: uuid.NewString(),
		Conn:      conn,
		Send:      make(chan []byte, 8),
	}

	h.manager.Register <- client

	if initial, err := json.Marshal(h.catalogUseCase.Snapshot()); err == nil {
		client.Send <- initial
	}

	go client.WritePump()
	go client.ReadPump(h.manager)

	return nil
}
