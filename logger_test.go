package willowgui

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestLoggerSilentByDefault(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should discard every level")
	}
}

func TestNewLogHandlerJSONForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(NewLogHandler(&buf, slog.LevelDebug)))
	defer SetLogger(nil)

	_, g := newTestGui(t)
	g.Run(func(g *Gui) { g.Window("W").Show(func(*Gui) {}) })

	line, _, _ := bytes.Cut(buf.Bytes(), []byte("\n"))
	var rec map[string]any
	if err := json.Unmarshal(line, &rec); err != nil {
		t.Fatalf("first log line %q is not JSON: %v", line, err)
	}
	if rec["msg"] != "widget created" || rec["gwid"] != "W" || rec["kind"] != "window" {
		t.Errorf("record = %v, want widget created for window W", rec)
	}
}

func TestNewLogHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(NewLogHandler(&buf, slog.LevelWarn)))
	defer SetLogger(nil)

	_, g := newTestGui(t)
	g.Run(func(g *Gui) { g.Window("W").Show(func(*Gui) {}) })
	if buf.Len() != 0 {
		t.Errorf("debug records written at warn level: %s", buf.String())
	}
}
