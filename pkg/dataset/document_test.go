package dataset

import (
	"strings"
	"testing"
)

func TestNewDocumentValidation(t *testing.T) {
	if _, err := NewDocument(nil, []byte("a\n")); err == nil {
		t.Fatalf("expected error for nil source")
	}
	if _, err := NewDocument(SourceFromFile("t.csv"), nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}

func TestDocumentRawIsACopy(t *testing.T) {
	payload := []byte("a,b\n")
	doc := MustNewDocument(SourceFromFile("t.csv"), payload)

	payload[0] = 'z'
	if doc.Raw()[0] != 'a' {
		t.Fatalf("document shares the caller's payload slice")
	}

	raw := doc.Raw()
	raw[0] = 'z'
	if doc.Raw()[0] != 'a' {
		t.Fatalf("Raw leaks the internal payload slice")
	}
}

func TestDocumentBasenameAndStem(t *testing.T) {
	cases := []struct {
		location string
		basename string
		stem     string
	}{
		{"/data/sales.csv", "sales.csv", "sales"},
		{"sales.csv", "sales.csv", "sales"},
		{"/data/report.final.csv", "report.final.csv", "report.final"},
		{"noext", "noext", "noext"},
	}

	for _, tc := range cases {
		doc := MustNewDocument(SourceFromFile(tc.location), []byte("a\n"))
		if got := doc.Basename(); got != tc.basename {
			t.Fatalf("%s: basename %q, want %q", tc.location, got, tc.basename)
		}
		if got := doc.Stem(); got != tc.stem {
			t.Fatalf("%s: stem %q, want %q", tc.location, got, tc.stem)
		}
	}
}

func TestNewRecordsRejectsRaggedRows(t *testing.T) {
	_, err := NewRecords([]string{"a", "b"}, [][]string{{"1", "2"}, {"3"}})
	if err == nil {
		t.Fatalf("expected error for ragged rows")
	}
	if !strings.Contains(err.Error(), "row 2") {
		t.Fatalf("error should name the offending row: %v", err)
	}
}

func TestNewRecordsRejectsEmptyHeader(t *testing.T) {
	if _, err := NewRecords(nil, nil); err == nil {
		t.Fatalf("expected error for empty header")
	}
}

func TestSourceFromURLPanicsOnInvalidURL(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for invalid url")
		}
	}()
	SourceFromURL("://not-a-url")
}
