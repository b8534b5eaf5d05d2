package logging

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	log := New(Options{})
	assert.Equal(t, logrus.InfoLevel, log.Level)
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
}

func TestNew_ExplicitLevel(t *testing.T) {
	log := New(Options{Level: "debug"})
	assert.Equal(t, logrus.DebugLevel, log.Level)
}

func TestNew_EnvLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")

	log := New(Options{})
	assert.Equal(t, logrus.WarnLevel, log.Level)
}

func TestNew_OptionBeatsEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	log := New(Options{Level: "trace"})
	assert.Equal(t, logrus.TraceLevel, log.Level)
}

func TestNew_UnknownLevelFallsBack(t *testing.T) {
	log := New(Options{Level: "shouting"})
	assert.Equal(t, logrus.InfoLevel, log.Level)
}

func TestNew_JSONFormatter(t *testing.T) {
	log := New(Options{JSON: true})
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
}

func TestNew_FileRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pricer.log")

	log := New(Options{File: path})
	rotator, ok := log.Out.(*lumberjack.Logger)
	require.True(t, ok, "expected a rotating file writer, got %T", log.Out)
	assert.Equal(t, path, rotator.Filename)

	log.Info("rotation smoke test")
	require.NoError(t, rotator.Close())
}
