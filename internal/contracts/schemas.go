package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"land-catalog/schemas"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Каталоги схем и суффиксы ключей
var schemaKinds = map[string]string{
	"events":   "Event",
	"requests": "Request",
}

var loadSchemas = sync.OnceValues(func() (map[string]*jsonschema.Schema, error) {
	return compileSchemas(schemas.SchemasFS)
})

func compileSchemas(fsys fs.FS) (map[string]*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	var paths []string
	for dir := range schemaKinds {
		err := fs.WalkDir(fsys, dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".json") {
				return nil
			}
			file, err := fsys.Open(path)
			if err != nil {
				return err
			}
			defer file.Close()
			// Ресурсы добавляются до компиляции, чтобы работали $ref между схемами
			if err := compiler.AddResource(path, file); err != nil {
				return fmt.Errorf("failed to add schema resource %s: %w", path, err)
			}
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("error walking schemas in %s: %w", dir, err)
		}
	}

	compiled := make(map[string]*jsonschema.Schema, len(paths))
	for _, path := range paths {
		schema, err := compiler.Compile(path)
		if err != nil {
			return nil, fmt.Errorf("could not compile schema %s: %w", path, err)
		}
		key := generateKeyFromPath(path)
		if key == "" {
			return nil, fmt.Errorf("unexpected schema path %s", path)
		}
		compiled[key] = schema
	}
	return compiled, nil
}

// generateKeyFromPath преобразует "events/quiz-submitted/v1.json" в "QuizSubmittedEvent/1.0.0",
// а "requests/quiz-submission/v1.json" в "QuizSubmissionRequest/1.0.0".
func generateKeyFromPath(path string) string {
	parts := strings.Split(strings.TrimSuffix(path, ".json"), "/")
	if len(parts) != 3 {
		return ""
	}
	suffix, ok := schemaKinds[parts[0]]
	if !ok {
		return ""
	}

	caser := cases.Title(language.English)
	var name strings.Builder
	for _, p := range strings.Split(parts[1], "-") {
		name.WriteString(caser.String(p))
	}
	name.WriteString(suffix)

	version := strings.TrimPrefix(parts[2], "v") + ".0.0"
	return name.String() + "/" + version
}

// Validate проверяет JSON-тело по схеме с ключом "<Name>/<version>"
func Validate(key string, body []byte) error {
	compiled, err := loadSchemas()
	if err != nil {
		return fmt.Errorf("schemas unavailable: %w", err)
	}
	schema, ok := compiled[key]
	if !ok {
		return fmt.Errorf("schema '%s' not found", key)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("message body is not a valid JSON: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}

// ValidateEvent проверяет тело исходящего события, например ("quiz-submitted", "v1").
func ValidateEvent(eventType, eventVersion string, body []byte) error {
	return Validate(keyFor("events", eventType, eventVersion), body)
}

// ValidateRequest проверяет тело входящего запроса, например ("quiz-submission", "v1").
func ValidateRequest(requestType, version string, body []byte) error {
	return Validate(keyFor("requests", requestType, version), body)
}

func keyFor(dir, name, version string) string {
	return generateKeyFromPath(dir + "/" + name + "/" + version + ".json")
}

// ValidationDetails разворачивает ошибку схемы в плоский список сообщений "поле: причина".
func ValidationDetails(err error) []string {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return []string{err.Error()}
	}
	var details []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			field := strings.TrimPrefix(e.InstanceLocation, "/")
			if field == "" {
				field = "body"
			}
			details = append(details, field+": "+e.Message)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(verr)
	return details
}
