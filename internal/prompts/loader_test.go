package prompts

import (
	"strings"
	"testing"
)

func TestGet_KnownPrompts(t *testing.T) {
	for _, key := range []string{"match-explanation", "recommend-projects"} {
		prompt, err := Get("matching.json", key)
		if err != nil {
			t.Fatalf("Get(matching.json, %s) error = %v", key, err)
		}
		if prompt == "" {
			t.Errorf("prompt %s is empty", key)
		}
	}
}

func TestGet_UnknownKey(t *testing.T) {
	if _, err := Get("matching.json", "nope"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestGet_UnknownFile(t *testing.T) {
	if _, err := Get("missing.json", "match-explanation"); err == nil {
		t.Error("expected error for unknown file")
	}
}

func TestFormat(t *testing.T) {
	template := "User: {{.User}}, Projects: {{.Projects}}, again {{.User}}"
	result := Format(template, map[string]string{
		"User":     "alice",
		"Projects": "[]",
	})

	want := "User: alice, Projects: [], again alice"
	if result != want {
		t.Errorf("Format() = %q, want %q", result, want)
	}
}

func TestFormat_TemplatePlaceholdersResolved(t *testing.T) {
	prompt := MustGet("matching.json", "match-explanation")
	result := Format(prompt, map[string]string{
		"User":    "{}",
		"Project": "{}",
		"Team":    "[]",
		"Signals": "none",
	})

	if strings.Contains(result, "{{.") {
		t.Errorf("unresolved placeholder remains in %q", result)
	}
}
