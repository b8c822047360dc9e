// Package validate checks wizard records and config documents against the
// embedded JSON Schemas.
package validate

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/efocats/efowizard/internal/schemas"
	"github.com/efocats/efowizard/internal/wizard"
)

// Result holds the errors from a validation pass.
type Result struct {
	Errors []string
}

// IsValid returns true if there are no validation errors.
func (r *Result) IsValid() bool {
	return len(r.Errors) == 0
}

type compiled struct {
	once   sync.Once
	schema *gojsonschema.Schema
	err    error
	src    []byte
}

func (c *compiled) get() (*gojsonschema.Schema, error) {
	c.once.Do(func() {
		c.schema, c.err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(c.src))
	})
	return c.schema, c.err
}

var (
	recordSchema = &compiled{src: schemas.RecordSchema}
	configSchema = &compiled{src: schemas.ConfigSchema}
)

func check(c *compiled, doc gojsonschema.JSONLoader, what string) (*Result, error) {
	schema, err := c.get()
	if err != nil {
		return nil, fmt.Errorf("compiling %s schema: %w", what, err)
	}
	res, err := schema.Validate(doc)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", what, err)
	}
	r := &Result{}
	for _, e := range res.Errors() {
		r.Errors = append(r.Errors, e.String())
	}
	return r, nil
}

// Record validates a finished record: every field present and area and
// plan drawn from the catalog.
func Record(d wizard.FormData) (*Result, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}
	return check(recordSchema, gojsonschema.NewBytesLoader(data), "record")
}

// Config validates a decoded config document (map form of the YAML file).
func Config(doc map[string]any) (*Result, error) {
	return check(configSchema, gojsonschema.NewGoLoader(doc), "config")
}
