package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/palemoky/big-two/internal/config"
	"github.com/palemoky/big-two/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	flag.Parse()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("加载配置文件失败，使用默认配置: %v", err)
		cfg = config.Default()
	}

	// 创建服务器
	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("创建服务器失败: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 优雅关闭
	go func() {
		<-ctx.Done()
		log.Println("正在关闭服务器...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeoutDuration())
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Println("🃏 锄大地服务器启动中...")
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}
