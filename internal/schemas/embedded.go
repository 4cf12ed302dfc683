package schemas

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"
)

//go:embed *.schema.json
var schemaFS embed.FS

// Document kinds with an embedded schema.
const (
	KindRequirement = "requirement"
	KindVocabulary  = "vocabulary"
	KindConfig      = "config"
)

// SchemaFor returns the embedded schema content for a document kind.
func SchemaFor(kind string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(kind)) + ".schema.json"
	data, err := schemaFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("no schema for document kind %q (expected one of %s)", kind, strings.Join(Kinds(), ", "))
	}
	return string(data), nil
}

// Kinds returns the document kinds with an embedded schema, sorted.
func Kinds() []string {
	entries, err := schemaFS.ReadDir(".")
	if err != nil {
		return nil
	}
	kinds := make([]string, 0, len(entries))
	for _, entry := range entries {
		kinds = append(kinds, strings.TrimSuffix(entry.Name(), ".schema.json"))
	}
	sort.Strings(kinds)
	return kinds
}

// ValidateFile validates a JSON file against the embedded schema for the
// given document kind.
func ValidateFile(kind, jsonPath string) error {
	schema, err := SchemaFor(kind)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file %s: %w", jsonPath, err)
	}

	return ValidateJSONString(schema, string(data))
}
