package texgen

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pkgdataset "github.com/texgen/go-texgen/pkg/dataset"
)

func TestGenerateTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scores.csv")
	if err := os.WriteFile(path, []byte("name,score\nA&B,95.12345\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	out, err := GenerateTable(context.Background(), pkgdataset.SourceFromFile(path), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	text := string(out)
	if !strings.Contains(text, `A\&B & 95.1235 \\`) {
		t.Fatalf("unexpected output:\n%s", text)
	}
	if !strings.Contains(text, `\caption{Auto-generated table from scores.csv}`) {
		t.Fatalf("default caption missing:\n%s", text)
	}
}

func TestGenerateTableFromDocument(t *testing.T) {
	doc := pkgdataset.MustNewDocument(
		pkgdataset.SourceFromFile("inline.csv"),
		[]byte("a,b\n1,2\n"),
	)

	out, err := GenerateTableFromDocument(context.Background(), doc, "markdown")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(string(out), "| a | b |") {
		t.Fatalf("markdown output expected:\n%s", out)
	}
}

func TestNewLoaderAndParserRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scores.csv")
	if err := os.WriteFile(path, []byte("a\n1\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := NewLoader().Load(context.Background(), pkgdataset.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	records, err := NewParser().Parse(context.Background(), doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(records.Rows) != 1 {
		t.Fatalf("want 1 row, got %d", len(records.Rows))
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	data, err := fs.ReadFile(EmbeddedTemplates(), "templates/table.tmpl")
	if err != nil {
		t.Fatalf("read embedded template: %v", err)
	}
	if !strings.Contains(string(data), `\begin{table}`) {
		t.Fatalf("unexpected template contents:\n%s", data)
	}
}
