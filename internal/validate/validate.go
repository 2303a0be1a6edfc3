package validate

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed product.schema.json
var productSchema []byte

var (
	once    sync.Once
	schema  *jsonschema.Schema
	loadErr error
)

func load() {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("product.schema.json", bytes.NewReader(productSchema)); err != nil {
		loadErr = err
		return
	}
	s, err := c.Compile("product.schema.json")
	if err != nil {
		loadErr = err
		return
	}
	schema = s
}

// Record validates a generic product record map against the schema.
func Record(m map[string]any) error {
	once.Do(load)
	if loadErr != nil {
		return loadErr
	}
	b, _ := json.Marshal(m)
	var v any
	_ = json.Unmarshal(b, &v)
	return schema.Validate(v)
}
