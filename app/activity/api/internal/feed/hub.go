package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"mergington-activities/common/messaging"

	"github.com/gorilla/websocket"
	"github.com/zeromicro/go-zero/core/logx"
)

const defaultBufferSize = 256

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// 允许跨域
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub 名单变更推送中心
// 所有订阅者共享一个广播队列，慢连接直接断开
type Hub struct {
	clients map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	// Run 退出后关闭，防止注册/注销永久阻塞
	done chan struct{}

	mu sync.RWMutex
}

// NewHub 创建推送中心，bufferSize <= 0 时使用默认值
func NewHub(bufferSize int) *Hub {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, bufferSize),
		done:       make(chan struct{}),
	}
}

// Run 运行 Hub，ctx 取消后断开全部订阅者
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			h.mu.Unlock()
			logx.Infof("[Feed] 新订阅者接入，当前 %d", h.ClientCount())

		case client := <-h.unregister:
			h.removeClient(client)

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// 发送队列已满
					delete(h.clients, client)
					close(client.send)
					logx.Errorf("[Feed] 订阅者发送缓冲区已满，已断开")
				}
			}
			h.mu.Unlock()

		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			logx.Info("[Feed] Hub 正在关闭")
			return
		}
	}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
}

func (h *Hub) registerClient(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) unregisterClient(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// ClientCount 当前订阅者数量
func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast 广播名单事件，队列已满时丢弃，不阻塞调用方
func (h *Hub) Broadcast(event messaging.RosterEvent) {
	if h == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		logx.Errorf("[Feed] 序列化失败: %v", err)
		return
	}
	select {
	case h.broadcast <- data:
	default:
		logx.Errorw("[Feed] 广播队列已满，丢弃事件",
			logx.Field("type", event.Type),
			logx.Field("activity", event.Activity))
	}
}

// ServeWS 升级连接并登记订阅者
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := newClient(h, conn)
	if !h.registerClient(client) {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
		return conn.Close()
	}

	go client.writePump()
	go client.readPump()
	return nil
}
