package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"healthassist/internal/chat"
)

func newTestApp(t *testing.T, input string) (*app, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	cfg := Config{LogLevel: "DEBUG", TypingDelay: -1, Colours: false, Timeout: time.Second}
	a, err := newApp(cfg, logs.GetLoggerFromLevel(slog.LevelDebug), strings.NewReader(input), out)
	require.NoError(t, err)
	return a, out
}

func TestDispatch_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "No command", args: nil},
		{name: "Unknown command", args: []string{"diagnose"}},
		{name: "Check without symptoms", args: []string{"check"}},
		{name: "Unknown location type", args: []string{"nearby", "dentist"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			a, _ := newTestApp(t, "")
			req.ErrorIs(a.dispatch(context.Background(), tt.args), errUsage)
		})
	}
}

func TestCheck(t *testing.T) {
	req := require.New(t)
	a, out := newTestApp(t, "")

	req.NoError(a.dispatch(context.Background(), []string{"check", "upset", "stomach", "and", "nausea"}))

	text := out.String()
	req.Contains(text, "Consult a healthcare professional")
	req.Contains(text, "Symptoms: upset stomach and nausea")
	req.Contains(text, "Gastroenteritis")
	req.Contains(text, "70%")
	req.Contains(text, "• ORS")
	req.Contains(text, "Pharmacy Finder")
	req.NotContains(text, "Common Flu")
}

func TestCheck_Fallback(t *testing.T) {
	req := require.New(t)
	a, out := newTestApp(t, "")

	req.NoError(a.dispatch(context.Background(), []string{"check", "itchy", "elbow"}))
	req.Contains(out.String(), "General Discomfort")
}

func TestChat(t *testing.T) {
	req := require.New(t)
	a, out := newTestApp(t, "1\n\nI have a headache\nexit\nnever read\n")

	req.NoError(a.dispatch(context.Background(), []string{"chat"}))

	text := out.String()
	req.Contains(text, chat.Greeting)
	req.Contains(text, "Quick questions:")
	req.Contains(text, "1. "+chat.QuickQuestions()[0])
	req.Contains(text, "Rest in a quiet, dark room")
	req.NotContains(text, "never read")
	// The blank line is not sent
	req.Equal(2, strings.Count(text, "Assistant is typing..."))
}

func TestChat_EndOfInput(t *testing.T) {
	req := require.New(t)
	a, out := newTestApp(t, "hello")

	req.NoError(a.dispatch(context.Background(), []string{"chat"}))
	req.Contains(out.String(), "Hello! How are you feeling today?")
}

func TestNearby(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		missing  []string
	}{
		{
			name:     "All",
			args:     []string{"nearby"},
			contains: []string{"MedPlus Pharmacy", "Dr. Sarah Johnson", "City General Hospital", "24/7", "5 of 5 open now"},
		},
		{
			name:     "Doctors",
			args:     []string{"nearby", "doctor"},
			contains: []string{"Dr. Sarah Johnson", "QuickCare Clinic"},
			missing:  []string{"MedPlus Pharmacy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			a, out := newTestApp(t, "")

			req.NoError(a.dispatch(context.Background(), tt.args))
			text := out.String()
			req.Contains(text, "In an emergency call 911 (tel:911)")
			for _, s := range tt.contains {
				req.Contains(text, s)
			}
			for _, s := range tt.missing {
				req.NotContains(text, s)
			}
		})
	}
}
