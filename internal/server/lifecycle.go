package server

import (
	"context"
	"log"
	"runtime"
	"time"
)

// monitorStats 定期记录服务器状态
func (s *Server) monitorStats(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		case <-s.done:
			return
		}

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		status := s.handler.Status(ctx)

		log.Printf("📊 [监控] 在线: %d | 牌局: %s (第 %d 步) | Goroutines: %d | 活跃连接: %d/%d | 内存: %.2f MB",
			s.GetOnlineCount(),
			status.State,
			status.Seq,
			runtime.NumGoroutine(),
			len(s.semaphore),
			cap(s.semaphore),
			float64(m.Alloc)/1024/1024)
	}
}

// Shutdown 关闭服务器：停止接受连接，关闭所有客户端并清理座位记录
func (s *Server) Shutdown(ctx context.Context) {
	s.once.Do(func() {
		close(s.done)

		s.httpMu.Lock()
		srv := s.httpServer
		s.httpMu.Unlock()
		if srv != nil {
			if err := srv.Shutdown(ctx); err != nil {
				log.Printf("HTTP 服务关闭失败: %v", err)
			}
		}

		s.clientsMu.Lock()
		for _, client := range s.clients {
			client.Close()
		}
		s.clientsMu.Unlock()

		if err := s.table.Reset(ctx); err != nil {
			log.Printf("清理座位记录失败: %v", err)
		}
		if s.redis != nil {
			_ = s.redis.Close()
		}

		log.Println("服务器已关闭")
	})
}
