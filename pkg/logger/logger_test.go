package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit_TagsServiceName(t *testing.T) {
	Init("info")
	defer Init("info")

	var buf bytes.Buffer
	log = log.Output(&buf)

	Info().Msg("hello")

	if !strings.Contains(buf.String(), `"service":"renohub"`) {
		t.Errorf("log line should carry the service field, got %s", buf.String())
	}
}

func TestInit_InvalidLevelFallsBackToInfo(t *testing.T) {
	Init("bogus")
	defer Init("info")

	if log.GetLevel() != zerolog.InfoLevel {
		t.Errorf("level = %v, expected info", log.GetLevel())
	}
}
