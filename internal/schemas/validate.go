// Package schemas validates generative-text responses against embedded
// JSON Schemas before they are trusted. A response that fails validation
// is treated like any other external-service failure.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Schema names for the AI response contracts.
const (
	MatchExplanation       = "match_explanation"
	ProjectRecommendations = "project_recommendations"
)

// ValidationError reports schema violations with field paths.
type ValidationError struct {
	Schema string
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("response violates %s schema: %s", e.Schema, strings.Join(e.Errors, "; "))
}

// Validate checks a JSON document against the named embedded schema.
func Validate(schemaName, document string) error {
	data, err := schemaFiles.ReadFile(schemaName + ".schema.json")
	if err != nil {
		return fmt.Errorf("failed to read schema %s: %w", schemaName, err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(data)
	documentLoader := gojsonschema.NewStringLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate against %s: %w", schemaName, err)
	}

	if !result.Valid() {
		verr := &ValidationError{Schema: schemaName}
		for _, desc := range result.Errors() {
			verr.Errors = append(verr.Errors, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return verr
	}
	return nil
}
