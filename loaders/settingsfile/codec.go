package settingsfile

import (
	"encoding/json"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// TOML decodes ".toml" documents.
type TOML struct{}

// Extensions implements Codec.
func (TOML) Extensions() []string { return []string{".toml"} }

// Decode implements Codec.
func (TOML) Decode(data []byte) (map[string]any, error) {
	values := map[string]any{}
	if err := toml.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return flatten(values), nil
}

// YAML decodes ".yaml" and ".yml" documents.
type YAML struct{}

// Extensions implements Codec.
func (YAML) Extensions() []string { return []string{".yaml", ".yml"} }

// Decode implements Codec.
func (YAML) Decode(data []byte) (map[string]any, error) {
	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return flatten(values), nil
}

// JSON decodes ".json" documents.
type JSON struct{}

// Extensions implements Codec.
func (JSON) Extensions() []string { return []string{".json"} }

// Decode implements Codec.
func (JSON) Decode(data []byte) (map[string]any, error) {
	values := map[string]any{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return flatten(values), nil
}

// flatten turns nested document tables into dotted setting keys, so a TOML
// `[font]` table with `family = "x"` and a top-level `font.family = "x"`
// address the same setting.
func flatten(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	flattenInto(out, "", values)
	return out
}

func flattenInto(out map[string]any, prefix string, values map[string]any) {
	for key, value := range values {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			flattenInto(out, full, nested)
			continue
		}
		out[full] = value
	}
}
