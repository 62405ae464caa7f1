package diagnostic

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// ToJSON renders the report canonically. Re-running ToJSON on the result of
// an unmodified analysis of the same source is byte-identical — this backs
// the "parse round-trip" testable property for AST dumps built on the same
// machinery (see ast.Dump).
func (r Report) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// ToYAML renders an operational dump of the report, suitable for a
// `--debug` flag on a host driver. Diagnostic data is identical to ToJSON;
// only the encoding differs.
func (r Report) ToYAML() ([]byte, error) {
	return yaml.Marshal(r)
}
