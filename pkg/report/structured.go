package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/toyinlola/siteshield/pkg/interfaces"
)

// JSONFormatter writes maps as indented JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// FormatMaps writes the collection in the API's envelope.
func (f *JSONFormatter) FormatMaps(w io.Writer, maps []interfaces.Map) error {
	records := make([]json.RawMessage, 0, len(maps))
	for i := range maps {
		raw, err := record(&maps[i])
		if err != nil {
			return err
		}
		records = append(records, raw)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{"siteShieldMaps": records})
}

// FormatMap writes the full map record as received from the API.
func (f *JSONFormatter) FormatMap(w io.Writer, m *interfaces.Map) error {
	raw, err := record(m)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("report: indenting map record: %w", err)
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}

// YAMLFormatter writes maps as YAML, keeping the API's field order.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a YAML formatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// FormatMaps writes the collection in the API's envelope.
func (f *YAMLFormatter) FormatMaps(w io.Writer, maps []interfaces.Map) error {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for i := range maps {
		node, err := yamlNode(&maps[i])
		if err != nil {
			return err
		}
		seq.Content = append(seq.Content, node)
	}

	doc := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		{Kind: yaml.ScalarNode, Value: "siteShieldMaps"},
		seq,
	}}
	return encodeYAML(w, doc)
}

// FormatMap writes the full map record.
func (f *YAMLFormatter) FormatMap(w io.Writer, m *interfaces.Map) error {
	node, err := yamlNode(m)
	if err != nil {
		return err
	}
	return encodeYAML(w, node)
}

// record returns the map as received, or a re-encoding when it was built locally.
func record(m *interfaces.Map) (json.RawMessage, error) {
	if len(m.Raw) > 0 {
		return m.Raw, nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("report: encoding map %s: %w", m.ID, err)
	}
	return raw, nil
}

// yamlNode decodes the JSON record into a YAML node. JSON is valid YAML,
// so key order survives.
func yamlNode(m *interfaces.Map) (*yaml.Node, error) {
	raw, err := record(m)
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("report: converting map %s to yaml: %w", m.ID, err)
	}
	node := &doc
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		node = doc.Content[0]
	}
	clearStyle(node)
	return node, nil
}

// clearStyle drops the flow style and quoting inherited from JSON.
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}

func encodeYAML(w io.Writer, node *yaml.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("report: writing yaml: %w", err)
	}
	return enc.Close()
}
