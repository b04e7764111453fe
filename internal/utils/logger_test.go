package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	var out, debug bytes.Buffer
	logger := newLogger(&out, &debug)

	logger.Info("started")
	logger.Warn("slow")
	logger.Error("failed")
	logger.Debug("details")

	assert.Contains(t, out.String(), "[INFO] ")
	assert.Contains(t, out.String(), "[WARN] ")
	assert.Contains(t, out.String(), "[ERROR] ")
	assert.Contains(t, out.String(), "failed")
	assert.NotContains(t, out.String(), "details")
	assert.Contains(t, debug.String(), "[DEBUG] ")
}

func TestGetLoggerWithoutInit(t *testing.T) {
	assert.NotNil(t, GetLogger())
}
