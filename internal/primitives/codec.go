package primitives

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// stateBody is the document form of a StateConfig; the name is the key.
type stateBody struct {
	Transitions map[string]string `json:"transitions,omitempty" yaml:"transitions,omitempty"`
}

// UnmarshalYAML decodes a mapping of state name to body, keeping key order.
func (ss *States) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*ss = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: states must be a mapping of state name to definition", node.Line)
	}

	out := make(States, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var name string
		if err := keyNode.Decode(&name); err != nil {
			return fmt.Errorf("line %d: state name: %w", keyNode.Line, err)
		}
		if err := checkBodyKeys(valueNode); err != nil {
			return fmt.Errorf("state %q: %w", name, err)
		}
		var body stateBody
		if err := valueNode.Decode(&body); err != nil {
			return fmt.Errorf("line %d: state %q: %w", valueNode.Line, name, err)
		}
		out = append(out, StateConfig{Name: name, Transitions: body.Transitions})
	}
	*ss = out
	return nil
}

// checkBodyKeys rejects keys a state body does not define. Node.Decode does
// not inherit the outer decoder's KnownFields setting.
func checkBodyKeys(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if key.Value != "transitions" {
			return fmt.Errorf("line %d: field %s not found in state definition", key.Line, key.Value)
		}
	}
	return nil
}

// MarshalYAML encodes the states as a mapping in declared order.
func (ss States) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, s := range ss {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s.Name}
		value := &yaml.Node{}
		if err := value.Encode(stateBody{Transitions: s.Transitions}); err != nil {
			return nil, fmt.Errorf("state %q: %w", s.Name, err)
		}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}

// UnmarshalJSON decodes an object of state name to body, keeping key order.
func (ss *States) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*ss = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("states must be an object of state name to definition, got %v", tok)
	}

	var out States
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("state name must be a string, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("state %q: %w", name, err)
		}
		var body stateBody
		if err := decodeStrict(raw, &body); err != nil {
			return fmt.Errorf("state %q: %w", name, err)
		}
		out = append(out, StateConfig{Name: name, Transitions: body.Transitions})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	if out == nil {
		out = States{}
	}
	*ss = out
	return nil
}

// MarshalJSON encodes the states as an object in declared order.
func (ss States) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range ss {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.Name)
		if err != nil {
			return nil, err
		}
		body, err := json.Marshal(stateBody{Transitions: s.Transitions})
		if err != nil {
			return nil, fmt.Errorf("state %q: %w", s.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// decodeStrict decodes data into v, rejecting unknown fields. A nested
// Decode call does not inherit DisallowUnknownFields from the caller.
func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
