package bots

import (
	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// BotsSchema is the JSON schema every bots file must satisfy before any
// record is trusted. It is also quoted verbatim in the sample bot's prompt so
// the bot can teach users the file format.
const BotsSchema = `{
    "type": "array",
    "items": {
        "type": "object",
        "properties": {
            "id": {"type": "string"},
            "name": {"type": "string"},
            "description": {"type": "string"},
            "entrypoint": {"type": "string"}
        },
        "required": ["id", "name", "description", "entrypoint"]
    }
}`

// validateCollection checks raw file content against BotsSchema. A document
// that fails to load as JSON is a parse failure, not a schema failure.
func validateCollection(path string, content []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(BotsSchema)
	documentLoader := gojsonschema.NewBytesLoader(content)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return errors.Wrap(ErrParse, err.Error())
	}
	if !result.Valid() {
		return &SchemaValidationError{Path: path, Results: result.Errors()}
	}
	return nil
}
