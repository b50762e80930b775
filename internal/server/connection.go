package server

import (
	"log"
	"net/http"

	"github.com/palemoky/big-two/internal/types"
)

// handleWebSocket 处理 WebSocket 连接
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	clientIP := GetClientIP(r)

	select {
	case <-s.done:
		http.Error(w, "Server is shutting down", http.StatusServiceUnavailable)
		return
	default:
	}

	// 连接数限制检查
	select {
	case s.semaphore <- struct{}{}:
	default:
		log.Printf("🚫 达到最大连接数限制 (%d), IP: %s", cap(s.semaphore), clientIP)
		http.Error(w, "Server Full", http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		<-s.semaphore
		log.Printf("WebSocket 升级失败: %v", err)
		return
	}

	client := NewClient(s, conn)
	client.IP = clientIP
	log.Printf("✅ 连接 %s 已建立 (IP: %s)", client.ID, clientIP)

	// 入座由消费协程完成，先于该连接的任何消息
	if !s.enqueue(event{kind: eventConnect, client: client}) {
		<-s.semaphore
		_ = conn.Close()
		return
	}

	go client.WritePump()
	go func() {
		defer func() { <-s.semaphore }()
		client.ReadPump()
	}()
}

// GetOnlineCount 在线连接数
func (s *Server) GetOnlineCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// GetClientByID 按 ID 查找连接
func (s *Server) GetClientByID(id string) types.ClientInterface {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	if c, ok := s.clients[id]; ok {
		return c
	}
	return nil
}

// RegisterClient 注册连接
func (s *Server) RegisterClient(id string, client types.ClientInterface) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	if c, ok := client.(*Client); ok {
		s.clients[id] = c
	}
}

// UnregisterClient 注销连接
func (s *Server) UnregisterClient(id string) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	if _, ok := s.clients[id]; ok {
		delete(s.clients, id)
		log.Printf("❌ 连接 %s 已断开", id)
	}
}
