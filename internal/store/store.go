package store

import (
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// MemoryDSN 进程内数据库，进程退出即丢弃
const MemoryDSN = ":memory:"

// DefaultSessionTTL 会话默认有效期
const DefaultSessionTTL = 2 * time.Hour

// Store SQLite 会话存储层
type Store struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// New 创建新的 Store 实例；dbPath 为空时使用内存库
func New(dbPath string, sessionTTL time.Duration) (*Store, error) {
	if dbPath == "" {
		dbPath = MemoryDSN
	}
	if dbPath != MemoryDSN {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// 内存库依赖单连接常驻
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	store := &Store{db: db, ttl: sessionTTL, now: time.Now}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema 初始化数据库结构
func (s *Store) initSchema() error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema.sql: %w", err)
	}

	if _, err := s.db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

// Close 关闭数据库连接
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
