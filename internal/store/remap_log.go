package store

import (
	"database/sql"
	"fmt"

	"pgatool/internal/model"
)

// CreateRemapLog 创建转换记录，返回 remap_log_id
func (s *Store) CreateRemapLog(filename string, fileSize int64, mawb string, airport model.Airport) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO remap_logs (filename, file_size, mawb, airport, status)
		VALUES (?, ?, ?, ?, ?)
	`, filename, fileSize, mawb, string(airport), model.RemapStatusProcessing)
	if err != nil {
		return 0, fmt.Errorf("failed to create remap log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get remap log id: %w", err)
	}
	return id, nil
}

// CompleteRemapLog 转换结束后更新记录
func (s *Store) CompleteRemapLog(id int64, outputRows, issueRows int, status, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE remap_logs SET
			output_rows = ?,
			issue_rows = ?,
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, outputRows, issueRows, status, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to update remap log: %w", err)
	}
	return nil
}

// RecentRemapLogs 最近的转换记录，新的在前
func (s *Store) RecentRemapLogs(limit int) ([]model.RemapLog, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, filename, file_size, mawb, airport, output_rows, issue_rows,
		       status, error_message, created_at, completed_at
		FROM remap_logs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query remap logs: %w", err)
	}
	defer rows.Close()

	logs := []model.RemapLog{}
	for rows.Next() {
		var (
			l         model.RemapLog
			airport   string
			completed sql.NullTime
		)
		if err := rows.Scan(&l.ID, &l.Filename, &l.FileSize, &l.MAWB, &airport,
			&l.OutputRows, &l.IssueRows, &l.Status, &l.ErrorMessage, &l.CreatedAt, &completed); err != nil {
			return nil, err
		}
		l.Airport = model.Airport(airport)
		if completed.Valid {
			t := completed.Time
			l.CompletedAt = &t
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
