package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Cleanup(reset)

	var buf bytes.Buffer
	Setup("warn", &buf)
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	logrus.Info("hidden")
	assert.Empty(t, buf.String())

	logrus.WithField("user_id", 3).Warn("visible")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, float64(3), entry["user_id"])
}

func TestSetup_UnknownLevel(t *testing.T) {
	t.Cleanup(reset)

	var buf bytes.Buffer
	Setup("chatty", &buf)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	assert.Contains(t, buf.String(), "unknown log level")
}

func reset() {
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{})
}
