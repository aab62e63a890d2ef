package ui

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

type FilmSpinner []string

var FilmEmojis FilmSpinner = []string{"🎬", "🎥", "📹", "🎞️", "📽️", "🎤", "🤖"}

type SpinnerCfg struct {
	Message  string
	Tokens   []string
	Duration time.Duration
}

var s *spinner.Spinner

// StartSpinner shows a spinner on stderr. It does nothing outside a terminal
// session.
func StartSpinner(cfg *SpinnerCfg) {
	if !IsInteractive() {
		return
	}
	if cfg.Tokens == nil {
		cfg.Tokens = FilmEmojis
	}
	if cfg.Duration.Microseconds() == 0 {
		cfg.Duration = time.Duration(100) * time.Millisecond
	}
	s = spinner.New(cfg.Tokens, cfg.Duration)
	s.Writer = os.Stderr

	if cfg.Message != "" {
		s.Suffix = " " + cfg.Message
	}

	s.Start()
}

func StopSpinner(msg string) {
	if s == nil {
		return
	}
	if msg != "" {
		s.FinalMSG = msg + "\n"
	}

	s.Stop()
	s = nil
}
