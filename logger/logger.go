package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

type Settings struct {
	Path       string `yaml:"Path"` // 为空时只输出到标准输出
	Name       string `yaml:"Name"`
	Ext        string `yaml:"Ext"`
	TimeFormat string `yaml:"TimeFormat"`
}

type Level int

const (
	DEBUG Level = iota
	INFO
	WARNING
	ERROR
	FATAL
)

const (
	flags              = log.LstdFlags | log.Lmicroseconds
	defaultCallerDepth = 2
	bufferSize         = 1 << 12 // 日志channel的缓冲大小
)

var levelFlags = []string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

func (l Level) String() string {
	if l < DEBUG || l > FATAL {
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
	return levelFlags[l]
}

// ParseLevel 将配置中的级别名称转换为Level，不区分大小写，空字符串对应INFO
func ParseLevel(name string) (Level, error) {
	if name == "" {
		return INFO, nil
	}
	name = strings.ToUpper(name)
	if name == "WARNING" {
		return WARNING, nil
	}
	for i, flag := range levelFlags {
		if flag == name {
			return Level(i), nil
		}
	}
	return INFO, fmt.Errorf("unknown log level: %s", name)
}

type logEntry struct {
	msg   string
	level Level
}

// Logger 格式化日志后通过channel交给后台goroutine写出，日志对象从entryPool中复用
type Logger struct {
	level     Level
	logFile   *os.File
	logger    *log.Logger
	entryChan chan *logEntry
	entryPool *sync.Pool
	closed    atomic.Bool
	done      chan struct{}
}

// DefaultLogger 默认日志对象
var DefaultLogger = NewStdoutLogger()

func newLogger(w io.Writer, level Level) *Logger {
	return &Logger{
		level:     level,
		logger:    log.New(w, "", flags),
		entryChan: make(chan *logEntry, bufferSize),
		entryPool: &sync.Pool{
			New: func() any {
				return &logEntry{}
			},
		},
		done: make(chan struct{}),
	}
}

// NewStdoutLogger 新建一个向标准输出写日志的logger
func NewStdoutLogger() *Logger {
	return NewWriterLogger(os.Stdout, DEBUG)
}

// NewWriterLogger 新建一个向w写日志的logger，低于level的日志被丢弃
func NewWriterLogger(w io.Writer, level Level) *Logger {
	logger := newLogger(w, level)
	go func() {
		defer close(logger.done)
		for e := range logger.entryChan {
			_ = logger.logger.Output(0, e.msg)
			logger.entryPool.Put(e)
		}
	}()
	return logger
}

func logFileName(settings *Settings) string {
	return fmt.Sprintf("%s-%s.%s", settings.Name, time.Now().Format(settings.TimeFormat), settings.Ext)
}

// NewFileLogger 同时向标准输出和按日期命名的日志文件写日志，日期变化时切换到新文件
func NewFileLogger(settings *Settings, level Level) (*Logger, error) {
	logFile, err := mustOpen(logFileName(settings), settings.Path)
	if err != nil {
		return nil, fmt.Errorf("open log file error: %w", err)
	}
	logger := newLogger(io.MultiWriter(os.Stdout, logFile), level)
	logger.logFile = logFile

	go func() {
		defer close(logger.done)
		for e := range logger.entryChan {
			name := filepath.Join(settings.Path, logFileName(settings))
			if name != logger.logFile.Name() {
				if f, err := mustOpen(logFileName(settings), settings.Path); err == nil {
					_ = logger.logFile.Close()
					logger.logFile = f
					logger.logger = log.New(io.MultiWriter(os.Stdout, f), "", flags)
				}
			}
			_ = logger.logger.Output(0, e.msg)
			logger.entryPool.Put(e)
		}
		_ = logger.logFile.Close()
	}()

	return logger, nil
}

// Setup 根据settings替换DefaultLogger并关闭原来的logger，Path为空时使用标准输出
func Setup(settings *Settings, level Level) error {
	var logger *Logger
	if settings == nil || settings.Path == "" {
		logger = NewWriterLogger(os.Stdout, level)
	} else {
		var err error
		logger, err = NewFileLogger(settings, level)
		if err != nil {
			return err
		}
	}
	old := DefaultLogger
	DefaultLogger = logger
	old.Close()
	return nil
}

// Close 写出所有未处理的日志后返回，之后的日志被丢弃
func (logger *Logger) Close() {
	if logger.closed.Swap(true) {
		return
	}
	close(logger.entryChan)
	<-logger.done
}

// Output 发送一个日志消息到logger，callerDepth为相对Output的调用栈深度
func (logger *Logger) Output(level Level, callerDepth int, msg string) {
	if level < logger.level || logger.closed.Load() {
		return
	}
	var formattedMsg string
	msg = strings.TrimSuffix(msg, "\n")
	_, file, line, ok := runtime.Caller(callerDepth)
	if ok {
		formattedMsg = fmt.Sprintf("[%s][%s:%d] %s", level, filepath.Base(file), line, msg)
	} else {
		formattedMsg = fmt.Sprintf("[%s] %s", level, msg)
	}

	entry := logger.entryPool.Get().(*logEntry)
	entry.msg = formattedMsg
	entry.level = level
	logger.entryChan <- entry
}

func (logger *Logger) Debugf(format string, v ...any) {
	logger.Output(DEBUG, defaultCallerDepth, fmt.Sprintf(format, v...))
}

func (logger *Logger) Infof(format string, v ...any) {
	logger.Output(INFO, defaultCallerDepth, fmt.Sprintf(format, v...))
}

func (logger *Logger) Warnf(format string, v ...any) {
	logger.Output(WARNING, defaultCallerDepth, fmt.Sprintf(format, v...))
}

func (logger *Logger) Errorf(format string, v ...any) {
	logger.Output(ERROR, defaultCallerDepth, fmt.Sprintf(format, v...))
}

func Debug(v ...any) {
	DefaultLogger.Output(DEBUG, defaultCallerDepth, fmt.Sprintln(v...))
}

func Debugf(format string, v ...any) {
	DefaultLogger.Output(DEBUG, defaultCallerDepth, fmt.Sprintf(format, v...))
}

func Info(v ...any) {
	DefaultLogger.Output(INFO, defaultCallerDepth, fmt.Sprintln(v...))
}

func Infof(format string, v ...any) {
	DefaultLogger.Output(INFO, defaultCallerDepth, fmt.Sprintf(format, v...))
}

func Warn(v ...any) {
	DefaultLogger.Output(WARNING, defaultCallerDepth, fmt.Sprintln(v...))
}

func Warnf(format string, v ...any) {
	DefaultLogger.Output(WARNING, defaultCallerDepth, fmt.Sprintf(format, v...))
}

func Error(v ...any) {
	DefaultLogger.Output(ERROR, defaultCallerDepth, fmt.Sprintln(v...))
}

func Errorf(format string, v ...any) {
	DefaultLogger.Output(ERROR, defaultCallerDepth, fmt.Sprintf(format, v...))
}

func Fatal(v ...any) {
	DefaultLogger.Output(FATAL, defaultCallerDepth, fmt.Sprintln(v...))
}

func Fatalf(format string, v ...any) {
	DefaultLogger.Output(FATAL, defaultCallerDepth, fmt.Sprintf(format, v...))
}
