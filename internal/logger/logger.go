package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rivo/tview"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a tag-scoped logger. Output goes to a log file when a log path
// is configured and to the debug console view in dev mode.
type Logger struct {
	sugar *zap.SugaredLogger
}

var (
	root *zap.Logger
	once sync.Once
)

func InitLogger(dev bool, logPath string, view *tview.TextView) {
	once.Do(func() {
		var cores []zapcore.Core

		if logPath != "" {
			timestamp := time.Now().Format("20060102_150405")
			fileName := fmt.Sprintf("openrouterfree_log_%s.log", timestamp)
			filePath := filepath.Join(logPath, fileName)

			file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err != nil {
				log.Fatalf("Failed to open log file: %s", err)
			}

			fileCfg := zap.NewProductionEncoderConfig()
			fileCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
			cores = append(cores, zapcore.NewCore(
				zapcore.NewConsoleEncoder(fileCfg),
				zapcore.AddSync(file),
				zapcore.InfoLevel,
			))
		}

		if dev && view != nil {
			viewCfg := zap.NewDevelopmentEncoderConfig()
			viewCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
			cores = append(cores, zapcore.NewCore(
				zapcore.NewConsoleEncoder(viewCfg),
				zapcore.AddSync(view),
				zapcore.DebugLevel,
			))
		}

		if len(cores) == 0 {
			root = zap.NewNop()
			return
		}
		root = zap.New(zapcore.NewTee(cores...))
	})
}

func NewLogger(tag string) *Logger {
	if root == nil {
		root = zap.NewNop()
	}
	return &Logger{sugar: root.Named(tag).Sugar()}
}

func (l *Logger) Info(v ...interface{}) {
	l.sugar.Info(v...)
}

func (l *Logger) Warn(v ...interface{}) {
	l.sugar.Warn(v...)
}

func (l *Logger) Error(v ...interface{}) {
	l.sugar.Error(v...)
}

func (l *Logger) Fatal(v ...interface{}) {
	l.sugar.Fatal(v...)
}

func (l *Logger) Close() {
	_ = l.sugar.Sync()
}
