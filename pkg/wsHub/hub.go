package ws

import (
	"context"
	"errors"
	"sync"

	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
	wrap "github.com/Temutjin2k/taxi-analytics-system/pkg/logger/wrapper"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/uuid"
)

var (
	ErrEmptyConn      = errors.New("connection is empty")
	ErrConnIsNotFound = errors.New("connection not found")
)

// ConnectionHub хранит и управляет всеми активными WebSocket соединениями
type ConnectionHub struct {
	clients map[uuid.UUID]*Conn
	l       logger.Logger
	mu      sync.Mutex
}

func NewConnHub(l logger.Logger) *ConnectionHub {
	return &ConnectionHub{
		clients: make(map[uuid.UUID]*Conn),
		l:       l,
	}
}

// Add добавляет новое соединение в хаб.
// Если соединение с этим entityID уже существует — оно закрывается.
func (h *ConnectionHub) Add(newConn *Conn) error {
	if newConn == nil {
		return ErrEmptyConn
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := wrap.WithAction(context.Background(), "add_ws_connection")

	if existing, ok := h.clients[newConn.entityID]; ok {
		h.l.Warn(ctx,
			"replacing existing connection",
			"entity_ID", existing.entityID,
		)
		if err := existing.Close(); err != nil {
			h.l.Warn(ctx,
				"failed to close existing conn",
				"entity_ID", existing.entityID,
				"err", err.Error(),
			)
		}
	}

	h.clients[newConn.entityID] = newConn

	return nil
}

// Delete удаляет и закрывает соединение по ID
func (h *ConnectionHub) Delete(entityID uuid.UUID) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := wrap.WithAction(context.Background(), "ws_connection_delete")

	conn, ok := h.clients[entityID]
	if !ok {
		h.l.Warn(ctx,
			"delete called for unknown entity",
			"entity_ID", entityID,
		)
		return ErrConnIsNotFound
	}

	if err := conn.Close(); err != nil {
		h.l.Warn(ctx,
			"failed to close conn",
			"entity_ID", entityID,
			"err", err.Error(),
		)
	}

	delete(h.clients, entityID)

	return nil
}

// Count возвращает количество активных соединений
func (h *ConnectionHub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

// Broadcast отправляет сообщение всем активным соединениям.
// Мёртвые соединения удаляются из хаба.
func (h *ConnectionHub) Broadcast(msg map[string]any) {
	h.mu.Lock()
	conns := make([]*Conn, 0, len(h.clients))
	for _, c := range h.clients {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	ctx := wrap.WithAction(context.Background(), "ws_broadcast")

	for _, c := range conns {
		if err := c.Send(msg); err != nil {
			h.l.Warn(ctx,
				"failed to send, dropping connection",
				"entity_ID", c.entityID,
				"err", err.Error(),
			)
			_ = h.Delete(c.entityID)
		}
	}
}

// CloseAll закрывает все соединения
func (h *ConnectionHub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := wrap.WithAction(context.Background(), "ws_close_all")

	for id, conn := range h.clients {
		if err := conn.Close(); err != nil {
			h.l.Warn(ctx,
				"failed to close conn",
				"entity_ID", id,
				"err", err.Error(),
			)
		}
		delete(h.clients, id)
	}
}
