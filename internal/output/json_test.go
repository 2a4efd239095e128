package output

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestJSONWriter_Fields(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, sampleReport(), "json"); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if got["project"] != "Talend ESB Studio SE" {
		t.Errorf("project = %v", got["project"])
	}
	if got["childrenPatched"] != float64(1) {
		t.Errorf("childrenPatched = %v, want 1", got["childrenPatched"])
	}
	root, ok := got["root"].(map[string]any)
	if !ok {
		t.Fatalf("root missing: %v", got["root"])
	}
	if root["status"] != "patched" {
		t.Errorf("root.status = %v", root["status"])
	}
	children, ok := got["children"].([]any)
	if !ok || len(children) != 2 {
		t.Fatalf("children = %v", got["children"])
	}
	unchanged := children[1].(map[string]any)
	if _, ok := unchanged["removals"]; ok {
		t.Error("removals should be omitted for unchanged files")
	}
}
