package transcript

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestLoadFromJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commands.jsonl")
	content := `{"id":"c1","text":"Yeni bağış ekle","source":"typed"}
not json at all

{"text":"<b>Raporu</b> hazırla","source":"voice","html":true}
{"id":"c3","text":"   "}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cmds, err := LoadFromJSONL(path, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("LoadFromJSONL: %v", err)
	}
	if len(cmds) != 2 {
		t.Fatalf("got %d commands, want 2: %+v", len(cmds), cmds)
	}
	if cmds[0].ID != "c1" || cmds[0].Source != "typed" {
		t.Errorf("cmds[0] = %+v", cmds[0])
	}
	if cmds[1].ID != "line-4" || !cmds[1].HTML {
		t.Errorf("cmds[1] = %+v", cmds[1])
	}
}

func TestLoadFromJSONLErrors(t *testing.T) {
	if _, err := LoadFromJSONL("/nonexistent/commands.jsonl", nil); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "empty.jsonl")
	if err := os.WriteFile(path, []byte("\n{bad}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromJSONL(path, nil); err == nil {
		t.Error("expected error when no command is usable")
	}
}
