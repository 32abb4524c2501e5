package render

import "fmt"

// TypeProperty is the feature property that overrides the layer name as
// style tag.
const TypeProperty = "type"

// StyleTag classifies a feature: its "type" property when present,
// otherwise the name of its layer.
func StyleTag(layer string, props map[string]any) string {
	v, ok := props[TypeProperty]
	if !ok || v == nil {
		return layer
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
