package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema checks that every config key is declared in the embedded JSON schema
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema map[string]any
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	return checkProperties(schema, resolveRef(schema, schema), configMap, "")
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{RequiredFromJSONSchemaTags: true}
	return r.Reflect(&Config{})
}

// checkProperties walks config values and fails on the first key missing from the schema node
func checkProperties(schema, node, values map[string]any, path string) error {
	props, _ := node["properties"].(map[string]any)
	for _, key := range slices.Sorted(maps.Keys(values)) {
		prop, ok := props[key].(map[string]any)
		if !ok {
			return fmt.Errorf("%s%s is not declared in schema", path, key)
		}
		nested, ok := values[key].(map[string]any)
		if !ok {
			continue
		}
		if err := checkProperties(schema, resolveRef(schema, prop), nested, path+key+"."); err != nil {
			return err
		}
	}
	return nil
}

// resolveRef returns the definition a "#/$defs/Name" reference points to, or the node itself
func resolveRef(schema, node map[string]any) map[string]any {
	ref, ok := node["$ref"].(string)
	if !ok {
		return node
	}
	defs, _ := schema["$defs"].(map[string]any)
	if def, ok := defs[strings.TrimPrefix(ref, "#/$defs/")].(map[string]any); ok {
		return def
	}
	return node
}
