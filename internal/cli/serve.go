package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pgatool/internal/server"
	"pgatool/internal/util"
)

func newServeCommand(a *app) *cobra.Command {
	var (
		port    int
		devMode bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "启动 HTTP 服务",
		RunE: func(cmd *cobra.Command, args []string) error {
			// 命令行端口仅在 config.toml 未显式配置 port 时生效
			if port > 0 && !a.info.PortSpecified {
				a.cfg.Server.Port = port
			}
			if devMode {
				a.cfg.Server.DevMode = true
			}
			return runServe(cmd.Context(), a)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "服务端口")
	cmd.Flags().BoolVar(&devMode, "dev", false, "开发模式（不打开浏览器）")
	return cmd
}

func runServe(ctx context.Context, a *app) error {
	if ctx == nil {
		ctx = context.Background()
	}
	srv, err := server.NewServer(a.cfg, a.logger)
	if err != nil {
		return err
	}
	defer srv.Close()

	addr := fmt.Sprintf(":%d", a.cfg.Server.Port)
	url := util.LocalURL(a.cfg.Server.Port)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", zap.Int("port", a.cfg.Server.Port))
		errCh <- srv.Run(addr)
	}()

	if !a.cfg.Server.DevMode {
		if err := util.OpenBrowserWithFallback(url); err != nil {
			a.logger.Warn("无法自动打开浏览器，请手动访问", zap.String("url", url), zap.Error(err))
		}
	} else {
		a.logger.Info("开发模式", zap.String("url", url))
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return fmt.Errorf("服务启动失败: %w", err)
	case <-ctx.Done():
		a.logger.Info("正在关闭服务...")
		return nil
	}
}
