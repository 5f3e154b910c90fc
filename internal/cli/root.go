package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pgatool/internal/config"
	"pgatool/internal/logging"
)

// app 命令共享的运行期状态
type app struct {
	configPath string
	envFile    string
	logLevel   string

	cfg    *config.AppConfig
	info   config.LoadConfigInfo
	logger *zap.Logger
}

// NewRootCommand 创建 pgatool 根命令
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pgatool",
		Short: "PGA 报关文书工具：清单列映射与 T01 状态日志解析",
		Long: `pgatool 把 TEMU PGA 清单转换为 NETCHB 上传模板，
并把 MAGAYA / NETCHB 的 T01 PGA 状态日志整理成可筛选、可导出的表格。`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config.toml 路径（默认可执行文件同目录）")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", ".env 文件路径，不存在时忽略")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "日志级别（覆盖配置文件）")

	root.AddCommand(
		newServeCommand(a),
		newRemapCommand(a),
		newParseCommand(a),
	)
	return root
}

// Execute 运行根命令
func Execute() error {
	return NewRootCommand().Execute()
}

// setup 加载 .env、配置与日志
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := loadEnvFile(a.envFile); err != nil {
		return err
	}

	cfg, info, err := config.LoadConfigWithInfo(a.configPath)
	if err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	a.cfg = cfg
	a.info = info

	format := cfg.Log.Format
	if cfg.Server.DevMode {
		format = "console"
	}
	logger, err := logging.New(cfg.Log.Level, format)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

// loadEnvFile .env 中的变量不覆盖已有环境变量
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("读取 %s 失败: %w", path, err)
	}
	return nil
}
