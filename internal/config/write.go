package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// sectionComments are written above the top-level keys of a generated file.
var sectionComments = map[string]string{
	"domain": "Sampled x axis: samples evenly spaced points over [start, end] (radians).",
	"wave":   "y = amplitude * sin(frequency * x + phase). phase is the initial slider value.",
	"slider": "Phase slider bounds and step size.",
	"plot":   "Figure size in pixels and enabled tools: " + strings.Join(KnownTools, ", "),
	"output": "color: auto, always, never",
}

// Marshal renders cfg as commented YAML.
func Marshal(cfg *Config) ([]byte, error) {
	var doc yaml.Node
	if err := doc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	if doc.Kind == yaml.MappingNode {
		doc.HeadComment = "sinewave configuration"
		for key, comment := range sectionComments {
			if keyNode := findMapKey(&doc, key); keyNode != nil {
				keyNode.HeadComment = comment
			}
		}
	}

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	return []byte(buf.String()), nil
}

// Write renders cfg to path, replacing any existing file.
func Write(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// findMapKey finds the key node in a mapping node by key name.
func findMapKey(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		if keyNode.Kind == yaml.ScalarNode && keyNode.Value == key {
			return keyNode
		}
	}

	return nil
}
