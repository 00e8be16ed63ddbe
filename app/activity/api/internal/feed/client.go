package feed

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	// 写入超时时间
	writeWait = 10 * time.Second
	// 心跳超时时间
	pongWait = 60 * time.Second
	// Ping 间隔 (必须小于 pongWait)
	pingPeriod = (pongWait * 9) / 10
	// 订阅端只收不发，读取上限很小
	maxMessageSize = 4 * 1024
	// 单个连接的待发送队列
	clientBufferSize = 32
)

// Client 名单推送订阅者
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// newClient 创建订阅者
func newClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, clientBufferSize),
	}
}

// readPump 读取并丢弃客户端消息，负责心跳与断线检测
func (c *Client) readPump() {
	defer func() {
		c.hub.unregisterClient(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logx.Errorf("[Feed] WebSocket 错误: %v", err)
			}
			return
		}
	}
}

// writePump 推送事件，一条事件一帧
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
