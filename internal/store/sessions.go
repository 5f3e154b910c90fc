package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pgatool/internal/model"
)

// ErrSessionNotFound 会话不存在或已过期
var ErrSessionNotFound = errors.New("parse session not found or expired")

// CreateSession 新建会话：空输入组，仅第一个展开
func (s *Store) CreateSession(variant string, groupCount int, airport model.Airport) (*model.ParseSession, error) {
	if airport == "" {
		airport = model.DefaultAirport
	}
	sess := &model.ParseSession{
		Token:   uuid.NewString(),
		Variant: variant,
		Airport: airport,
		Groups:  model.NewInputGroups(groupCount),
	}

	state, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}

	if _, err := s.PurgeExpired(); err != nil {
		return nil, err
	}

	_, err = s.db.Exec(`
		INSERT INTO parse_sessions (token, variant, state, expires_at)
		VALUES (?, ?, ?, ?)
	`, sess.Token, variant, string(state), s.expiry())
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return sess, nil
}

// GetSession 读取会话（过期视为不存在）
func (s *Store) GetSession(token string) (*model.ParseSession, error) {
	var state string
	var expiresAt int64
	err := s.db.QueryRow(
		"SELECT state, expires_at FROM parse_sessions WHERE token = ?", token,
	).Scan(&state, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if s.now().Unix() > expiresAt {
		_ = s.DeleteSession(token)
		return nil, ErrSessionNotFound
	}

	var sess model.ParseSession
	if err := json.Unmarshal([]byte(state), &sess); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", token, err)
	}
	return &sess, nil
}

// SaveSession 写回会话并顺延有效期
func (s *Store) SaveSession(sess *model.ParseSession) error {
	state, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	res, err := s.db.Exec(`
		UPDATE parse_sessions
		SET state = ?, expires_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE token = ?
	`, string(state), s.expiry(), sess.Token)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// DeleteSession 删除会话
func (s *Store) DeleteSession(token string) error {
	_, err := s.db.Exec("DELETE FROM parse_sessions WHERE token = ?", token)
	return err
}

// PurgeExpired 清理过期会话
func (s *Store) PurgeExpired() (int64, error) {
	res, err := s.db.Exec("DELETE FROM parse_sessions WHERE expires_at < ?", s.now().Unix())
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	return res.RowsAffected()
}

// CountSessions 当前有效会话数
func (s *Store) CountSessions() (int, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM parse_sessions WHERE expires_at >= ?", s.now().Unix(),
	).Scan(&n)
	return n, err
}

func (s *Store) expiry() int64 {
	return s.now().Add(s.ttl).Unix()
}

// setClock 测试用
func (s *Store) setClock(now func() time.Time) {
	s.now = now
}
