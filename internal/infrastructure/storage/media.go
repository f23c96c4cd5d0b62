// Package storage 提供本地媒体文件存储
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gameforge-api/internal/config"
	"gameforge-api/pkg/logger"
)

// MediaSink 媒体文件写入接口，返回可存库的相对路径
type MediaSink interface {
	Save(ctx context.Context, relativeSubpath string, data []byte) (string, error)
}

// LocalMediaStore 本地文件系统媒体存储
type LocalMediaStore struct {
	root string
}

// NewLocalMediaStore 创建本地媒体存储
func NewLocalMediaStore(cfg *config.MediaConfig) (*LocalMediaStore, error) {
	root := cfg.Root
	if root == "" {
		root = "media"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media root: %w", err)
	}
	return &LocalMediaStore{root: root}, nil
}

// Save 将字节写入媒体目录下的相对子路径，返回该相对路径
func (s *LocalMediaStore) Save(ctx context.Context, relativeSubpath string, data []byte) (string, error) {
	clean := filepath.ToSlash(filepath.Clean(relativeSubpath))
	if clean == "" || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid media subpath %q", relativeSubpath)
	}

	fullPath := filepath.Join(s.root, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	logger.FromContext(ctx).Debug("media file stored", "path", clean, "bytes", len(data))
	return clean, nil
}

// Root 返回媒体根目录
func (s *LocalMediaStore) Root() string {
	return s.root
}
