package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	color.NoColor = true
	f := &CustomFormatter{}

	tests := []struct {
		name  string
		entry *logrus.Entry
		out   string
	}{
		{
			name:  "Plain info prints the message only",
			entry: &logrus.Entry{Level: logrus.InfoLevel, Message: "hello", Data: logrus.Fields{}},
			out:   "hello\n",
		},
		{
			name: "Fields are sorted by key",
			entry: &logrus.Entry{Level: logrus.DebugLevel, Message: "request", Data: logrus.Fields{
				"path":   "/auth/user/me",
				"method": "POST",
			}},
			out: "debug request method=POST path=/auth/user/me\n",
		},
		{
			name:  "Warnings carry their level",
			entry: &logrus.Entry{Level: logrus.WarnLevel, Message: "careful", Data: logrus.Fields{}},
			out:   "warni careful\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := f.Format(tt.entry)
			require.NoError(t, err)
			require.Equal(t, tt.out, string(b))
		})
	}
}

func TestApplyLogLevel(t *testing.T) {
	t.Setenv("SHUFFLL_LOGLEVEL", "")
	ApplyLogLevel(false)
	require.Equal(t, logrus.InfoLevel, LogOut.GetLevel())

	ApplyLogLevel(true)
	require.Equal(t, logrus.DebugLevel, LogOut.GetLevel())
	require.Equal(t, logrus.DebugLevel, LogErr.GetLevel())

	t.Setenv("SHUFFLL_LOGLEVEL", "trace")
	ApplyLogLevel(true)
	require.Equal(t, logrus.TraceLevel, LogOut.GetLevel())
}

func TestLogOutPrintsPlainInfo(t *testing.T) {
	color.NoColor = true
	var b bytes.Buffer
	LogOut.SetOutput(&b)
	defer LogOut.SetOutput(os.Stdout)

	LogOut.Infof("👋 %s", "Logged out")
	require.Equal(t, "👋 Logged out\n", b.String())
}
