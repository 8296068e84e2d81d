package gotemplate

import (
	"strings"
	"testing"
	"testing/fstest"
)

func testEngine(t *testing.T, files fstest.MapFS) *Engine {
	t.Helper()
	engine, err := New(WithFS(files))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestNewRequiresTemplateSource(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatalf("expected error without base dir or fs.FS")
	}
}

func TestRenderTemplateAppendsExtension(t *testing.T) {
	engine := testEngine(t, fstest.MapFS{
		"greet.tmpl": &fstest.MapFile{Data: []byte("hello {{ name|safe }}")},
	})

	out, err := engine.RenderTemplate("greet", map[string]any{"name": "world"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "hello world" {
		t.Fatalf("got %q", out)
	}
}

func TestRenderTemplateMissing(t *testing.T) {
	engine := testEngine(t, fstest.MapFS{})

	_, err := engine.RenderTemplate("absent", nil)
	if err == nil {
		t.Fatalf("expected error for missing template")
	}
	if !strings.Contains(err.Error(), "absent.tmpl") {
		t.Fatalf("error should name the template path: %v", err)
	}
}

func TestRenderString(t *testing.T) {
	engine := testEngine(t, fstest.MapFS{})

	out, err := engine.RenderString("{{ a|safe }}-{{ b|safe }}", map[string]any{"a": "x", "b": "y"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "x-y" {
		t.Fatalf("got %q", out)
	}
}

func TestRenderDispatchesOnContent(t *testing.T) {
	engine := testEngine(t, fstest.MapFS{
		"named.tmpl": &fstest.MapFile{Data: []byte("from file")},
	})

	out, err := engine.Render("named", nil)
	if err != nil {
		t.Fatalf("render named: %v", err)
	}
	if out != "from file" {
		t.Fatalf("got %q", out)
	}

	out, err = engine.Render("inline {{ v|safe }}", map[string]any{"v": "value"})
	if err != nil {
		t.Fatalf("render inline: %v", err)
	}
	if out != "inline value" {
		t.Fatalf("got %q", out)
	}
}

func TestConvertToContextRejectsUnknownTypes(t *testing.T) {
	engine := testEngine(t, fstest.MapFS{
		"t.tmpl": &fstest.MapFile{Data: []byte("x")},
	})

	_, err := engine.RenderTemplate("t", 42)
	if err == nil {
		t.Fatalf("expected error for unsupported context type")
	}
}

func TestGlobalContext(t *testing.T) {
	engine, err := New(
		WithFS(fstest.MapFS{
			"t.tmpl": &fstest.MapFile{Data: []byte("{{ app|safe }}")},
		}),
		WithGlobalData(map[string]any{"app": "texgen"}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderTemplate("t", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "texgen" {
		t.Fatalf("got %q", out)
	}
}
