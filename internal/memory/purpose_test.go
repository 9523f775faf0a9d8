package memory

import "testing"

func TestInferPurpose(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"main.py", "Python source code"},
		{"src/app/views.py", "Python source code"},
		{"README.md", "Documentation"},
		{".gitignore", "Git ignore rules"},
		{"package.json", "Configuration/data file"},
		{"ci.yml", "Configuration file"},
		{"config.yaml", "Configuration file"},
		{"Makefile", "Other"},
		{"main.go", "Other"},
		{"", "Other"},
	}

	for _, tt := range tests {
		if got := InferPurpose(tt.filename); got != tt.want {
			t.Errorf("InferPurpose(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestInferPurpose_CaseInsensitive(t *testing.T) {
	if got, want := InferPurpose("README.MD"), InferPurpose("readme.md"); got != want {
		t.Errorf("InferPurpose(\"README.MD\") = %q, want %q", got, want)
	}
	if got := InferPurpose("SETUP.PY"); got != "Python source code" {
		t.Errorf("InferPurpose(\"SETUP.PY\") = %q, want %q", got, "Python source code")
	}
}
