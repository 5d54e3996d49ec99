package exchart

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
	"gopkg.in/yaml.v3"
)

const specSchemaURL = "https://exchart.local/schemas/chartspec.schema.json"

//go:embed chartspec.schema.json
var specSchemaJSON string

var specSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(specSchemaURL, strings.NewReader(specSchemaJSON)); err != nil {
		return nil, fmt.Errorf("chart spec schema load failed: %w", err)
	}
	compiled, err := c.Compile(specSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("chart spec schema compile failed: %w", err)
	}
	return compiled, nil
})

// LoadSpec reads and validates a chart spec file (YAML or JSON).
func LoadSpec(path string) (models.ChartSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return models.ChartSpec{}, NewSpecError(path, "read", err)
	}
	return ParseSpec(path, data)
}

// ParseSpec validates data against the chart spec schema and decodes it.
// JSON input is accepted as YAML. source names the input in errors.
func ParseSpec(source string, data []byte) (models.ChartSpec, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return models.ChartSpec{}, NewSpecError(source, "parse", err)
	}

	// The schema validator works on JSON values, so round-trip the document.
	encoded, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(raw)
	if err != nil {
		return models.ChartSpec{}, NewSpecError(source, "parse", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(encoded))
	if err != nil {
		return models.ChartSpec{}, NewSpecError(source, "parse", err)
	}
	schema, err := specSchema()
	if err != nil {
		return models.ChartSpec{}, NewSpecError(source, "schema", err)
	}
	if err := schema.Validate(doc); err != nil {
		return models.ChartSpec{}, NewSpecError(source, "schema", err)
	}

	var spec models.ChartSpec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return models.ChartSpec{}, NewSpecError(source, "decode", err)
	}
	return spec, nil
}

// MarshalSpec encodes a chart spec as YAML.
func MarshalSpec(spec models.ChartSpec) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(spec); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
