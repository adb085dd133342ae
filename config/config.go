package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"odict/datastruct/dict"
	"odict/datastruct/text"
	"odict/logger"
)

type DictConfig struct {
	InitialCapacity int             `yaml:"InitialCapacity"` // key/value缓冲区初始容量
	MemoryLimit     int             `yaml:"MemoryLimit"`     // key和value总字节数上限，0表示不限制
	LogLevel        string          `yaml:"LogLevel"`        // DEBUG, INFO, WARN, ERROR, FATAL
	Log             logger.Settings `yaml:"Log"`

	ConfigFilePath string `yaml:"-"` // 配置文件绝对路径
}

var Config *DictConfig

func init() {
	Config = Default()
}

// Default 返回默认配置：只输出到标准输出，不限制内存
func Default() *DictConfig {
	return &DictConfig{
		InitialCapacity: text.InitialCapacity,
		LogLevel:        "INFO",
		Log: logger.Settings{
			Name:       "odict",
			Ext:        "log",
			TimeFormat: "2006-01-02",
		},
	}
}

// Parse 解析yaml内容，文件中没有出现的字段保留默认值
func Parse(data []byte) (*DictConfig, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *DictConfig) validate() error {
	if c.InitialCapacity < 0 {
		return fmt.Errorf("InitialCapacity must not be negative: %d", c.InitialCapacity)
	}
	if c.MemoryLimit < 0 {
		return fmt.Errorf("MemoryLimit must not be negative: %d", c.MemoryLimit)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level 返回配置的日志级别
func (c *DictConfig) Level() logger.Level {
	level, _ := logger.ParseLevel(c.LogLevel)
	return level
}

// DictOptions 构造创建字典所需的参数
func (c *DictConfig) DictOptions(l dict.Logger) *dict.Options {
	return &dict.Options{
		InitialCapacity: c.InitialCapacity,
		MemoryLimit:     c.MemoryLimit,
		Logger:          l,
	}
}

// SetupConfig 读取配置文件并替换全局Config
func SetupConfig(configFilePath string) error {
	data, err := os.ReadFile(configFilePath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return err
	}
	if absPath, err := filepath.Abs(configFilePath); err == nil {
		c.ConfigFilePath = absPath
	}
	Config = c
	return nil
}
