package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/palemoky/big-two/internal/apperrors"
	"github.com/palemoky/big-two/internal/config"
	"github.com/palemoky/big-two/internal/logger"
	"github.com/palemoky/big-two/internal/transport"
	"github.com/palemoky/big-two/internal/ui"
)

const connectTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "配置文件路径")
	serverAddr := flag.String("server", "", "服务器地址 (host:port)")
	name := flag.String("name", "", "昵称")
	withSound := flag.Bool("sound", false, "开启提示音")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "加载配置文件失败，使用默认配置: %v\n", err)
		} else {
			cfg = loaded
		}
	}
	if *serverAddr != "" {
		cfg.Client.Server = *serverAddr
	}
	if *name != "" {
		cfg.Client.Name = *name
	}

	// 界面占用终端，日志写入文件
	if err := logger.Init("client"); err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverURL := fmt.Sprintf("ws://%s/ws", cfg.Client.Server)
	client := transport.NewClient(serverURL)

	dialCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	err := client.Connect(dialCtx)
	cancel()
	if err != nil {
		log.Printf("连接 %s 失败: %v", serverURL, err)
		fmt.Fprintf(os.Stderr, "无法连接服务器 %s: %v\n", cfg.Client.Server, err)
		os.Exit(1)
	}
	defer client.Close()

	err = ui.Run(ctx, client, ui.Options{
		Name:  cfg.Client.Name,
		Sound: cfg.Client.Sound || *withSound,
	})
	if err != nil {
		log.Printf("客户端退出: %v", err)
		if apperrors.IsConnectionRejected(err) {
			fmt.Fprintln(os.Stderr, "牌桌已满，请稍后再试")
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "客户端退出: %v\n", err)
		os.Exit(1)
	}
}
