package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger_Levels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewWithWriters("particles", false, &out, &errOut)

	l.Debugf("hidden %d", 1)
	assert.Empty(t, out.String(), "debug is off by default")

	l.Infof("technique %s", "red")
	assert.Contains(t, out.String(), "[particles] INFO: technique red")

	l.Warnf("speaker unavailable")
	l.Errorf("boom")
	assert.Contains(t, errOut.String(), "[particles] WARN: speaker unavailable")
	assert.Contains(t, errOut.String(), "[particles] ERROR: boom")

	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())
	l.Debugf("visible %d", 2)
	assert.Contains(t, out.String(), "DEBUG: visible 2")
}

func TestDefaultLogger_NoPrefix(t *testing.T) {
	var out bytes.Buffer
	l := NewWithWriters("", false, &out, &out)
	l.Infof("plain")
	assert.Contains(t, out.String(), "INFO: plain")
	assert.NotContains(t, out.String(), "[")
}

func TestOrNop(t *testing.T) {
	l := OrNop(nil)
	assert.NotNil(t, l)
	assert.False(t, l.DebugEnabled())
	l.Infof("discarded")

	d := New("x", true)
	assert.Same(t, d, OrNop(d))
}
