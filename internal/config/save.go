package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SaveUI updates the ui section of the config file in place. Other
// sections, comments, and formatting are preserved by editing the
// yaml.Node tree instead of re-marshaling the whole document.
func SaveUI(configPath string, ui UIConfig) error {
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	uiNode, err := buildUINode(ui)
	if err != nil {
		return fmt.Errorf("building ui node: %w", err)
	}

	if doc.Kind == 0 {
		doc = yaml.Node{
			Kind: yaml.DocumentNode,
			Content: []*yaml.Node{
				{
					Kind: yaml.MappingNode,
					Content: []*yaml.Node{
						{Kind: yaml.ScalarNode, Value: "ui"},
						uiNode,
					},
				},
			},
		}
	} else if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root := doc.Content[0]
		if root.Kind == yaml.MappingNode {
			found := false
			for i := 0; i < len(root.Content)-1; i += 2 {
				if root.Content[i].Value == "ui" {
					root.Content[i+1] = uiNode
					found = true
					break
				}
			}
			if !found {
				root.Content = append(root.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Value: "ui"},
					uiNode,
				)
			}
		}
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	if err := os.WriteFile(configPath, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// buildUINode marshals a UIConfig into a yaml mapping node.
func buildUINode(ui UIConfig) (*yaml.Node, error) {
	payload := struct {
		VimMode     bool   `yaml:"vim_mode"`
		DefaultMode string `yaml:"default_mode"`
		Placeholder string `yaml:"placeholder"`
	}{
		VimMode:     ui.VimMode,
		DefaultMode: ui.DefaultMode,
		Placeholder: ui.Placeholder,
	}

	node := &yaml.Node{}
	if err := node.Encode(payload); err != nil {
		return nil, err
	}
	return node, nil
}
