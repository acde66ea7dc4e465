package page

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchema is the structural contract every stored page definition
// must satisfy before it is trusted by the loader.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["pageId", "name", "widgets"],
  "properties": {
    "pageId": {"type": "string", "minLength": 1},
    "name": {"type": "string", "minLength": 1},
    "widgets": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "type"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "type": {"type": "string", "minLength": 1},
          "props": {"type": "object"},
          "styles": {"type": "object"},
          "isVisible": {"type": "boolean"},
          "events": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["id", "trigger"],
              "properties": {
                "id": {"type": "string"},
                "trigger": {"type": "string", "enum": ["onClick", "onChange", "onSubmit"]},
                "actions": {
                  "type": "array",
                  "items": {
                    "type": "object",
                    "required": ["id", "type"],
                    "properties": {
                      "id": {"type": "string"},
                      "type": {"type": "string"}
                    }
                  }
                }
              }
            }
          },
          "dataBinding": {
            "type": "object",
            "required": ["source"],
            "properties": {
              "source": {"type": "string", "enum": ["static", "api", "database", "computed"]}
            }
          },
          "layout": {
            "type": "object",
            "properties": {
              "x": {"type": "integer", "minimum": 0},
              "y": {"type": "integer", "minimum": 0},
              "w": {"type": "integer", "minimum": 1},
              "h": {"type": "integer", "minimum": 1}
            }
          }
        }
      }
    },
    "layout": {"type": "object"},
    "dataSources": {"type": "array"},
    "globalSettings": {"type": "object"}
  }
}`

var schema = gojsonschema.NewStringLoader(documentSchema)

// ValidateDocument checks raw definition JSON against the page schema.
func ValidateDocument(data []byte) error {
	result, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("page definition is not valid JSON: %w", err)
	}

	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}

	return errors.New("invalid page definition: " + strings.Join(details, "; "))
}
