package sysutil

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestParseLogLevel(t *testing.T) {
	for in, want := range map[string]zerolog.Level{
		"debug":    zerolog.DebugLevel,
		" DeBuG ":  zerolog.DebugLevel,
		"trace":    zerolog.TraceLevel,
		"":         zerolog.InfoLevel,
		"warn":     zerolog.WarnLevel,
		"Warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"fatal":    zerolog.FatalLevel,
		"panic":    zerolog.PanicLevel,
		"verbose":  zerolog.InfoLevel,
		"disabled": zerolog.Disabled,
	} {
		if got := ParseLogLevel(in); got != want {
			t.Errorf("ParseLogLevel(%q)=%v, want %v", in, got, want)
		}
	}
}

func TestIsTruthy(t *testing.T) {
	for _, v := range []string{"1", "TRUE", " yes ", "Y", "On"} {
		if !IsTruthy(v) {
			t.Errorf("IsTruthy(%q)=false", v)
		}
	}
	for _, v := range []string{"", "0", "off", "no", "enabled"} {
		if IsTruthy(v) {
			t.Errorf("IsTruthy(%q)=true", v)
		}
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty(); got != "" {
		t.Fatalf("no args = %q", got)
	}
	if got := FirstNonEmpty(" ", "\t"); got != "" {
		t.Fatalf("blanks = %q", got)
	}
	if got := FirstNonEmpty("", " Staging ", "development"); got != " Staging " {
		t.Fatalf("got %q, want the raw value", got)
	}
}

func TestConfigureLogger(t *testing.T) {
	origLevel, origLogger, origCtx := zerolog.GlobalLevel(), log.Logger, zerolog.DefaultContextLogger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(origLevel)
		log.Logger = origLogger
		zerolog.DefaultContextLogger = origCtx
	})

	var buf bytes.Buffer
	ConfigureLogger(&buf, "warning", false)
	log.Info().Msg("dropped")
	log.Ctx(context.Background()).Warn().Str("component", "scheduler").Msg("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("want one line at warn, got %q", buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("not JSON: %v", err)
	}
	if rec["message"] != "kept" || rec["component"] != "scheduler" || rec["service"] != "careercoach" || rec["time"] == nil {
		t.Fatalf("record=%v", rec)
	}

	buf.Reset()
	ConfigureLogger(&buf, "debug", true)
	log.Debug().Msg("pretty line")
	if out := buf.String(); !strings.Contains(out, "pretty line") || strings.HasPrefix(out, "{") {
		t.Fatalf("want console output, got %q", out)
	}
}
