package excel

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/xuri/excelize/v2"
)

// DefaultTemplateURL NETCHB 上传模板的固定地址
const DefaultTemplateURL = "https://jun2369.github.io/MAWBchangenew/NEWCHB.xlsx"

const maxTemplateBytes = 32 << 20

// TemplateSource 模板来源：本地路径优先，否则从网络获取
type TemplateSource struct {
	Path    string
	URL     string
	Timeout time.Duration
	Client  *http.Client
}

// Load 每次转换时加载一次模板，失败不重试
func (s TemplateSource) Load(ctx context.Context) (*excelize.File, error) {
	if s.Path != "" {
		f, err := OpenTemplate(s.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTemplateUnavailable, err)
		}
		return f, nil
	}

	url := s.URL
	if url == "" {
		url = DefaultTemplateURL
	}
	raw, err := s.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableTemplate, err)
	}
	return f, nil
}

func (s TemplateSource) fetch(ctx context.Context, url string) ([]byte, error) {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateUnavailable, err)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrTemplateUnavailable, resp.Status)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxTemplateBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableTemplate, err)
	}
	return raw, nil
}

// OpenTemplate 从路径打开模板
func OpenTemplate(path string) (*excelize.File, error) {
	if path == "" {
		return nil, errors.New("template path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("template not found: %w", err)
	}
	return excelize.OpenFile(path)
}

// OpenUpload 读取上传的工作簿
func OpenUpload(r io.Reader) (*excelize.File, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableUpload, err)
	}
	return f, nil
}
