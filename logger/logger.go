package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

type LogLevel int

const (
	LogLevelNormal LogLevel = iota
	LogLevelDebug
	LogLevelTrace
)

func GetLogLevel() LogLevel {
	switch os.Getenv("SHUFFLL_LOGLEVEL") {
	case "debug":
		return LogLevelDebug
	case "trace":
		return LogLevelTrace
	default:
		return LogLevelNormal
	}
}

var LogOut = logrus.New()
var LogErr = logrus.New()

// ApplyLogLevel sets the level of both loggers. verbose forces at least debug.
func ApplyLogLevel(verbose bool) {
	level := GetLogLevel()
	if verbose && level < LogLevelDebug {
		level = LogLevelDebug
	}

	var lvl logrus.Level
	switch level {
	case LogLevelTrace:
		lvl = logrus.TraceLevel
	case LogLevelDebug:
		lvl = logrus.DebugLevel
	default:
		lvl = logrus.InfoLevel
	}
	LogOut.SetLevel(lvl)
	LogErr.SetLevel(lvl)
}

var levelColors = map[logrus.Level]*color.Color{
	logrus.TraceLevel: color.New(color.FgHiBlack),
	logrus.DebugLevel: color.New(color.FgCyan),
	logrus.InfoLevel:  color.New(color.FgGreen),
	logrus.WarnLevel:  color.New(color.FgYellow),
	logrus.ErrorLevel: color.New(color.FgRed),
	logrus.FatalLevel: color.New(color.FgRed, color.Bold),
	logrus.PanicLevel: color.New(color.FgRed, color.Bold),
}

// CustomFormatter prints the message followed by its fields in key order.
// Info entries without fields are printed bare so they read like normal output.
type CustomFormatter struct{}

func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	if entry.Level != logrus.InfoLevel || len(entry.Data) > 0 {
		c, ok := levelColors[entry.Level]
		if !ok {
			c = color.New(color.Reset)
		}
		b.WriteString(c.Sprintf("%-5.5s", entry.Level.String()))
		b.WriteByte(' ')
	}
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

type lockedWriter struct {
	w   io.Writer
	mux *sync.Mutex
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mux.Lock()
	defer lw.mux.Unlock()
	return lw.w.Write(p)
}

func init() {
	mux := &sync.Mutex{}

	// stdout and stderr share one lock so spinner frames and log lines
	// don't interleave mid-line.
	stdout := &lockedWriter{w: os.Stdout, mux: mux}
	stderr := &lockedWriter{w: os.Stderr, mux: mux}
	LogOut.SetOutput(stdout)
	LogErr.SetOutput(stderr)
	LogOut.SetFormatter(&CustomFormatter{})
	LogErr.SetFormatter(&CustomFormatter{})
}
