package deps

import (
	"reflect"
	"testing"
	"testing/fstest"
)

type mapReader struct {
	fsys fstest.MapFS
}

func (r mapReader) Has(path string) bool {
	_, err := r.fsys.Stat(path)
	return err == nil
}

func (r mapReader) Read(path string) string {
	data, err := r.fsys.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

func file(content string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content), Mode: 0o644}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Requirement
		matched bool
	}{
		{"pinned", "flask==2.3.1", Requirement{"flask", "2.3.1"}, true},
		{"minimum", "requests>=2.28", Requirement{"requests", "2.28"}, true},
		{"unpinned", "django", Requirement{"django", "latest"}, true},
		{"underscore name", "typing_extensions==4.8.0", Requirement{"typing_extensions", "4.8.0"}, true},
		{"surrounding whitespace", "  gunicorn==21.2.0  ", Requirement{"gunicorn", "21.2.0"}, true},
		{"comment", "# pinned for CVE-2023-1234", Requirement{}, false},
		{"blank", "", Requirement{}, false},
		{"whitespace only", "   ", Requirement{}, false},
		{"section header", "[tool.poetry]", Requirement{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			if ok != tt.matched {
				t.Fatalf("ParseLine(%q) matched=%v, want %v", tt.line, ok, tt.matched)
			}
			if got != tt.want {
				t.Fatalf("ParseLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestExtract_PackageJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"package.json": file(`{
			"dependencies": {"react": "^18.2.0", "express": "4.18.2"},
			"devDependencies": {"typescript": "~5.3.0", "react": "19.0.0"}
		}`),
	}

	got := Extract(mapReader{fsys})

	want := map[string]string{
		"react":      "19.0.0",
		"express":    "4.18.2",
		"typescript": "5.3.0",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract() = %v, want %v", got, want)
	}
}

func TestExtract_Requirements(t *testing.T) {
	fsys := fstest.MapFS{
		"requirements.txt": file("# web\nflask==2.3.1\n\nrequests>=2.28\ncelery\n"),
	}

	got := Extract(mapReader{fsys})

	want := map[string]string{
		"flask":    "2.3.1",
		"requests": "2.28",
		"celery":   "latest",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract() = %v, want %v", got, want)
	}
}

func TestExtract_Pipfile(t *testing.T) {
	fsys := fstest.MapFS{
		"Pipfile": file(`[[source]]
url = "https://pypi.org/simple"
name = "pypi"

[packages]
flask = "*"
requests = "==2.28.1"

[dev-packages]
pytest = ">=7.0"
`),
	}

	got := Extract(mapReader{fsys})

	want := map[string]string{
		"flask":    "latest",
		"requests": "2.28.1",
		"pytest":   "7.0",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract() = %v, want %v", got, want)
	}
}

func TestExtract_MalformedSourcesContributeNothing(t *testing.T) {
	fsys := fstest.MapFS{
		"package.json": file(`{"dependencies": {`),
	}

	if got := Extract(mapReader{fsys}); len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
}

func TestExtract_NoManifests(t *testing.T) {
	got := Extract(mapReader{fstest.MapFS{}})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected non-nil empty map, got %v", got)
	}
}
