package bots

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var (
	ErrParse            = errors.New("bots file is not valid JSON")
	ErrSchemaValidation = errors.New("bots file failed schema validation")
	ErrStorage          = errors.New("bots file storage error")
	ErrNotFound         = errors.New("bot not found")
)

// SchemaValidationError reports which records in the bots file violated the
// collection schema.
type SchemaValidationError struct {
	Path    string
	Results []gojsonschema.ResultError
}

func (e *SchemaValidationError) Error() string {
	if e == nil {
		return ErrSchemaValidation.Error()
	}
	descs := make([]string, 0, len(e.Results))
	for _, r := range e.Results {
		descs = append(descs, r.String())
	}
	return fmt.Sprintf("%s (%s): %s", ErrSchemaValidation, e.Path, strings.Join(descs, "; "))
}

func (e *SchemaValidationError) Is(target error) bool { return target == ErrSchemaValidation }
