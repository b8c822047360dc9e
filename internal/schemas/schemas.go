// Package schemas embeds the JSON Schemas for wizard records and config files.
package schemas

import _ "embed"

// RecordSchema describes a completed wizard record.
//
//go:embed record.schema.json
var RecordSchema []byte

// ConfigSchema describes efowizard.yaml.
//
//go:embed config.schema.json
var ConfigSchema []byte
