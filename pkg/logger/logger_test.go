package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestBufferedLoggerRendersHTML(t *testing.T) {
	l := New()
	l.Info("[sk] start", zap.Int("vertices", 4))
	l.Debug("[sk-edge] merge")

	logs := l.HTMLLogs()
	require.Len(t, logs, 1)
	assert.True(t, strings.HasPrefix(logs[0], "<pre>"))
	assert.Contains(t, logs[0], `<span style="color: green;">INFO</span>`)
	assert.Contains(t, logs[0], `<span style="color: cyan;">DEBUG</span>`)
	assert.Contains(t, logs[0], "[sk] start")
	assert.Contains(t, logs[0], `{"vertices": 4}`)

	l.ClearLogs()
	assert.Equal(t, []string{"<pre></pre>"}, l.HTMLLogs())
}

func TestAnsiToHTMLEscapesMarkup(t *testing.T) {
	got := ansiToHTML("\033[31mERROR\033[0m a<b & c>d")
	assert.Equal(t, `<pre><span style="color: red;">ERROR</span> a&lt;b &amp; c&gt;d</pre>`, got)
}

func TestConsoleLoggerLevelAndColors(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsole(&buf, zapcore.InfoLevel, false)
	l.Debug("hidden")
	l.Warn("visible", zap.Float64("d", 1.5))
	require.NoError(t, l.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "visible")
	assert.NotContains(t, out, "\033[")
	assert.Nil(t, l.HTMLLogs())
}

func TestWithSharesBuffer(t *testing.T) {
	l := New()
	l.With(zap.String("shape", "square")).Info("done")
	logs := l.HTMLLogs()
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0], "square")
}

func TestNopLogger(t *testing.T) {
	l := NewNop()
	assert.NotPanics(t, func() {
		l.Info("x")
		l.Error("y")
		l.ClearLogs()
	})
	assert.Nil(t, l.HTMLLogs())
}
