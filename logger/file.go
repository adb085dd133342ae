package logger

import (
	"fmt"
	"os"
	"path/filepath"
)

// mustOpen 以追加模式打开dir下的日志文件，目录不存在时自动创建
func mustOpen(fileName, dir string) (*os.File, error) {
	_, err := os.Stat(dir)
	if os.IsPermission(err) {
		return nil, fmt.Errorf("permission denied dir: %s", dir)
	}
	if os.IsNotExist(err) {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("error during make log dir: %s, error: %w", dir, err)
		}
	}
	f, err := os.OpenFile(filepath.Join(dir, fileName), os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("fail to open file, error: %w", err)
	}
	return f, nil
}
