package consoletable

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadOptions decodes YAML options on top of DefaultOptions. Unknown keys are
// rejected. An empty document yields the defaults.
//
//	columns: [name, age]
//	number_alignment: right
//	include_header_row: true
//	enable_count: false
//	cell_divider: " | "
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return opts, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (a *Alignment) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseAlignment(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (a Alignment) MarshalYAML() (any, error) {
	return a.String(), nil
}
