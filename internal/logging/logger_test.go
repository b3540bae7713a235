package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qiansheng/tianji-ai-go/internal/config"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		wantLevel logrus.Level
	}{
		{"debug", "debug", logrus.DebugLevel},
		{"info", "info", logrus.InfoLevel},
		{"error", "error", logrus.ErrorLevel},
		{"unknown falls back to warn", "loud", logrus.WarnLevel},
		{"empty falls back to warn", "", logrus.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(&config.Config{Environment: "production", LogLevel: tt.logLevel})
			assert.Equal(t, tt.wantLevel, logger.GetLevel())
		})
	}
}

func TestNew_FormatterByEnvironment(t *testing.T) {
	dev := New(&config.Config{Environment: "development", LogLevel: "info"})
	textFormatter, ok := dev.Formatter.(*logrus.TextFormatter)
	require.True(t, ok)
	assert.True(t, textFormatter.FullTimestamp)

	prod := New(&config.Config{Environment: "production", LogLevel: "info"})
	_, ok = prod.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)
}

func TestNew_JSONOutputCarriesFields(t *testing.T) {
	logger := New(&config.Config{Environment: "production", LogLevel: "info"})

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.WithFields(logrus.Fields{
		"chart":   "庚子 戊子 甲寅 丙寅",
		"verdict": "身旺",
	}).Info("Chart analysis complete")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Chart analysis complete", entry["msg"])
	assert.Equal(t, "庚子 戊子 甲寅 丙寅", entry["chart"])
	assert.Equal(t, "身旺", entry["verdict"])
	assert.Equal(t, "info", entry["level"])
}
