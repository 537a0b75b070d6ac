package logger

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger оборачивает zap. Логгер из New пишет в буфер, чтобы потом
// показать лог прогона на странице просмотрщика.
type ZapLogger struct {
	log    *zap.Logger
	logBuf *bytes.Buffer
}

func encoderConfig(colors aurora.Aurora) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    colorLevelEncoder(colors),
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// New создает логгер, который копит записи в памяти (для HTML).
func New() *ZapLogger {
	logBuf := &bytes.Buffer{}

	encoder := zapcore.NewConsoleEncoder(encoderConfig(aurora.NewAurora(true)))

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(logBuf)), zap.DebugLevel)

	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))

	return &ZapLogger{
		log:    logger,
		logBuf: logBuf,
	}
}

// NewConsole пишет в w начиная с уровня level. colors включает ANSI цвета уровней.
func NewConsole(w io.Writer, level zapcore.Level, colors bool) *ZapLogger {
	encoder := zapcore.NewConsoleEncoder(encoderConfig(aurora.NewAurora(colors)))
	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), level)

	return &ZapLogger{
		log: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)),
	}
}

// NewNop ничего не пишет.
func NewNop() *ZapLogger {
	return &ZapLogger{log: zap.NewNop()}
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 | 15:04:05]"))
}

func colorLevelEncoder(colors aurora.Aurora) zapcore.LevelEncoder {
	return func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		var v aurora.Value
		switch level {
		case zapcore.DebugLevel:
			v = colors.Cyan(level.CapitalString())
		case zapcore.InfoLevel:
			v = colors.Green(level.CapitalString())
		case zapcore.WarnLevel:
			v = colors.Yellow(level.CapitalString())
		case zapcore.ErrorLevel:
			v = colors.Red(level.CapitalString())
		default:
			v = colors.Reset(level.CapitalString())
		}
		enc.AppendString(v.String())
	}
}

var ansiColor = regexp.MustCompile(`\033\[(\d+)m`)

// Converts ANSI color codes to HTML span with inline styles
func ansiToHTML(input string) string {
	var result strings.Builder
	var lastIndex int
	open := false

	result.WriteString("<pre>")

	for _, match := range ansiColor.FindAllStringSubmatchIndex(input, -1) {
		start, end := match[0], match[1]
		if start > lastIndex {
			result.WriteString(escapeHTML(input[lastIndex:start]))
		}

		colorCode := input[match[2]:match[3]]
		if color, ok := colorMap[colorCode]; ok {
			if open {
				result.WriteString("</span>")
			}
			result.WriteString(`<span style="color: ` + color + `;">`)
			open = true
		} else if colorCode == "0" && open {
			result.WriteString("</span>")
			open = false
		}

		lastIndex = end
	}

	if lastIndex < len(input) {
		result.WriteString(escapeHTML(input[lastIndex:]))
	}
	if open {
		result.WriteString("</span>")
	}

	result.WriteString("</pre>")

	return result.String()
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeHTML(s string) string { return htmlEscaper.Replace(s) }

// Color mapping for ANSI codes
var colorMap = map[string]string{
	"31": "red",
	"32": "green",
	"33": "yellow",
	"34": "blue",
	"36": "cyan",
}

// HTMLLogs отдает накопленный лог, переведенный в HTML. Для логгеров без
// буфера возвращает nil.
func (z *ZapLogger) HTMLLogs() []string {
	if z.logBuf == nil {
		return nil
	}
	_ = z.log.Sync()
	return []string{ansiToHTML(z.logBuf.String())}
}

// ClearLogs очищает буфер.
func (z *ZapLogger) ClearLogs() {
	if z.logBuf != nil {
		z.logBuf.Reset()
	}
}

// With возвращает логгер с постоянными полями. Буфер общий с родителем.
func (z *ZapLogger) With(fields ...zap.Field) *ZapLogger {
	return &ZapLogger{log: z.log.With(fields...), logBuf: z.logBuf}
}

func (z *ZapLogger) Info(wrappedMsg string, fields ...zap.Field) {
	z.log.Info(wrappedMsg, fields...)
}

func (z *ZapLogger) Debug(wrappedMsg string, fields ...zap.Field) {
	z.log.Debug(wrappedMsg, fields...)
}

func (z *ZapLogger) Warn(wrappedMsg string, fields ...zap.Field) {
	z.log.Warn(wrappedMsg, fields...)
}

func (z *ZapLogger) Error(wrappedMsg string, fields ...zap.Field) {
	z.log.Error(wrappedMsg, fields...)
}

func (z *ZapLogger) Fatal(wrappedMsg string, fields ...zap.Field) {
	z.log.Fatal(wrappedMsg, fields...)
}

func (z *ZapLogger) Sync() error {
	return z.log.Sync()
}
