package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Template TemplateConfig `toml:"template"`
	Session  SessionConfig  `toml:"session"`
	Log      LogConfig      `toml:"log"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// TemplateConfig NETCHB 模板来源：path 优先于 url
type TemplateConfig struct {
	Path           string `toml:"path"`
	URL            string `toml:"url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// SessionConfig 日志解析会话存储
type SessionConfig struct {
	DBPath     string `toml:"db_path"`
	TTLMinutes int    `toml:"ttl_minutes"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // json / console
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	Path          string
	PortSpecified bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20262,
			DevMode: false,
		},
		Template: TemplateConfig{
			URL:            "https://jun2369.github.io/MAWBchangenew/NEWCHB.xlsx",
			TimeoutSeconds: 30,
		},
		Session: SessionConfig{
			DBPath:     ":memory:",
			TTLMinutes: 120,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// TemplateTimeout 模板下载超时
func (c *AppConfig) TemplateTimeout() time.Duration {
	if c.Template.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.Template.TimeoutSeconds) * time.Second
}

// SessionTTL 会话有效期
func (c *AppConfig) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLMinutes) * time.Minute
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverMap, ok := raw["server"].(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// DefaultConfigPath 可执行文件同目录下的 config.toml
func DefaultConfigPath() string {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	return filepath.Join(exeDir, "config.toml")
}

// LoadConfigWithInfo 从 config.toml 加载配置并返回元信息
// path 为空时使用可执行文件同目录下的 config.toml；文件不存在时使用默认配置
func LoadConfigWithInfo(path string) (*AppConfig, LoadConfigInfo, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	info := LoadConfigInfo{Path: path}
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		info.PortSpecified = isPortSpecifiedInToml(data)
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, info, err
		}
	case os.IsNotExist(err):
		info.Path = ""
	default:
		return nil, info, err
	}

	applyEnv(config)
	return config, info, nil
}

// LoadConfig 加载配置
func LoadConfig(path string) (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo(path)
	return config, err
}

// applyEnv 环境变量覆盖（用于容器 / 本地运行）
func applyEnv(config *AppConfig) {
	if v := os.Getenv("PGATOOL_TEMPLATE_PATH"); v != "" {
		config.Template.Path = v
	}
	if v := os.Getenv("PGATOOL_TEMPLATE_URL"); v != "" {
		config.Template.URL = v
	}
	if v := os.Getenv("PGATOOL_SESSION_DB"); v != "" {
		config.Session.DBPath = v
	}
	if v := os.Getenv("PGATOOL_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			config.Server.Port = port
		}
	}
	if v := os.Getenv("PGATOOL_LOG_LEVEL"); v != "" {
		config.Log.Level = v
	}
}

// SaveConfig 保存配置到指定路径
func SaveConfig(path string, config *AppConfig) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
