package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dahiyakapil/task-tracker/backend/tasks-service/config"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const SystemName = "tasks-service"

// Logger is the process-wide logger. Until InitLogger runs it writes with
// logrus defaults to stderr.
var Logger = logrus.New()
var once sync.Once

// CustomFormatter renders one line per entry:
// Date, Time, Event Source, Event Type, Event ID, Message and caller location.
type CustomFormatter struct {
	SystemName string
	Location   *time.Location
	NewEventID func() string
}

func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	location := f.Location
	if location == nil {
		location = time.Local
	}
	newEventID := f.NewEventID
	if newEventID == nil {
		newEventID = func() string { return uuid.New().String() }
	}
	localTime := entry.Time.In(location)

	fmt.Fprintf(b, "Date: %s, Time: %s, ", localTime.Format("2006-01-02"), localTime.Format("15:04:05"))
	fmt.Fprintf(b, "Event Source: %s, ", f.SystemName)
	fmt.Fprintf(b, "Event Type: %s, ", strings.ToUpper(entry.Level.String()))
	fmt.Fprintf(b, "Event ID: %s, ", newEventID())
	fmt.Fprintf(b, "Message: %s", entry.Message)

	for _, key := range sortedKeys(entry.Data) {
		fmt.Fprintf(b, ", %s: %v", key, entry.Data[key])
	}

	if entry.HasCaller() {
		fmt.Fprintf(b, ", Location: %s:%d in %s", filepath.Base(entry.Caller.File), entry.Caller.Line, entry.Caller.Function)
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// InitLogger sends the logger to stdout and a rotated log file.
func InitLogger(cfg config.LogConfig) {
	once.Do(func() {
		level, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			level = logrus.InfoLevel
		}

		writers := []io.Writer{os.Stdout}
		if cfg.File != "" {
			if err := os.MkdirAll(filepath.Dir(cfg.File), 0o700); err != nil {
				logrus.Fatalf("Event ID: LOG_DIR_CREATE_FAILED, Description: Failed to create log directory: %v", err)
			}
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.File,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   true,
			})
		}

		Logger.SetOutput(io.MultiWriter(writers...))
		Logger.SetFormatter(&CustomFormatter{SystemName: SystemName})
		Logger.SetLevel(level)
		Logger.SetReportCaller(true)

		Logger.Infof("Event ID: LOGGER_INITIALIZED, Description: Logger initialized for %s, level %s, file %q", SystemName, level, cfg.File)
	})
}
