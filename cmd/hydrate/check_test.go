package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/vango-dev/hydrate/internal/errors"
	"github.com/vango-dev/hydrate/pkg/dom"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMarkup(t *testing.T) {
	t.Run("fragment", func(t *testing.T) {
		path := writeTemp(t, "page.html", `<div>hi</div>`)
		node, err := loadMarkup(path)
		if err != nil {
			t.Fatalf("loadMarkup: %v", err)
		}
		if node == nil || node.FirstChild() == nil {
			t.Fatal("fragment container has no children")
		}
	})

	t.Run("full document hydrates against body", func(t *testing.T) {
		path := writeTemp(t, "page.html", `<html><body><p>x</p></body></html>`)
		node, err := loadMarkup(path)
		if err != nil {
			t.Fatalf("loadMarkup: %v", err)
		}
		el, ok := node.(dom.Element)
		if !ok || el.TagName() != "body" {
			t.Errorf("container = %v, want body element", node)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadMarkup(filepath.Join(t.TempDir(), "absent.html"))
		he, ok := err.(*errors.HydrateError)
		if !ok || he.Code != "H140" {
			t.Errorf("err = %v, want H140", err)
		}
	})
}

func TestLoadTree(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		path := writeTemp(t, "tree.json", `[{"kind": "element", "tag": "div"}]`)
		nodes, err := loadTree(path)
		if err != nil {
			t.Fatalf("loadTree: %v", err)
		}
		if len(nodes) != 1 || nodes[0].Tag != "div" {
			t.Errorf("nodes = %v", nodes)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		path := writeTemp(t, "tree.json", `[{"kind": "portal"}]`)
		_, err := loadTree(path)
		he, ok := err.(*errors.HydrateError)
		if !ok || he.Code != "H002" {
			t.Errorf("err = %v, want H002", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadTree(filepath.Join(t.TempDir(), "absent.json"))
		he, ok := err.(*errors.HydrateError)
		if !ok || he.Code != "H141" {
			t.Errorf("err = %v, want H141", err)
		}
	})
}

func TestCheckFailedJSONOutput(t *testing.T) {
	in := errors.New("H140")

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	out := checkFailed(in, true)
	w.Close()
	os.Stdout = old

	if out != in {
		t.Errorf("checkFailed returned %v, want the original error", out)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("stdout is not valid JSON: %v\n%s", err, data)
	}
	if decoded["code"] != "H140" {
		t.Errorf("code = %v", decoded["code"])
	}
}

func TestCheckFailedQuietWithoutJSON(t *testing.T) {
	in := errors.New("H141")

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	out := checkFailed(in, false)
	w.Close()
	os.Stdout = old

	if out != in {
		t.Errorf("checkFailed returned %v, want the original error", out)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("stdout = %q, want empty", data)
	}
}
