package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomFormatterLayout(t *testing.T) {
	formatter := &CustomFormatter{
		SystemName: "tasks-service",
		Location:   time.UTC,
		NewEventID: func() string { return "evt-1" },
	}
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Time:    time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "Event ID: TASK_NOT_FOUND, Description: missing",
		Data:    logrus.Fields{"status": 404, "method": "GET"},
	}

	out, err := formatter.Format(entry)
	require.NoError(t, err)

	assert.Equal(t,
		"Date: 2025-02-03, Time: 04:05:06, Event Source: tasks-service, Event Type: WARNING, Event ID: evt-1, "+
			"Message: Event ID: TASK_NOT_FOUND, Description: missing, method: GET, status: 404\n",
		string(out))
}

func TestCustomFormatterGeneratesEventIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&CustomFormatter{SystemName: "tasks-service"})

	logger.Info("first")
	logger.Info("second")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "Event Type: INFO")
	assert.NotEqual(t, eventID(lines[0]), eventID(lines[1]))
}

func eventID(line []byte) string {
	const marker = "Event ID: "
	i := bytes.Index(line, []byte(marker))
	if i < 0 {
		return ""
	}
	rest := line[i+len(marker):]
	if j := bytes.IndexByte(rest, ','); j >= 0 {
		return string(rest[:j])
	}
	return string(rest)
}
