package config

import (
	"go.trai.ch/gha-validator/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Configfile represents the structure of github-actions-validator.config.yml.
type Configfile struct {
	Validate ValidateDTO `yaml:"validate"`
	Install  []string    `yaml:"install"`
}

// ValidateDTO is the label -> path mapping of the validate section.
// It keeps the order in which labels appear in the file.
type ValidateDTO []domain.ValidationEntry

// UnmarshalYAML decodes a mapping node, preserving key order.
// Aliases are followed and merge keys (<<) are expanded in place.
func (v *ValidateDTO) UnmarshalYAML(node *yaml.Node) error {
	entries := make(ValidateDTO, 0, len(node.Content)/2)
	if err := appendEntries(&entries, node, 0); err != nil {
		return err
	}

	*v = entries
	return nil
}

// maxAliasDepth bounds merge-key expansion so alias cycles cannot recurse forever.
const maxAliasDepth = 32

func appendEntries(entries *ValidateDTO, node *yaml.Node, depth int) error {
	node = resolveAlias(node)
	if depth > maxAliasDepth {
		return zerr.With(zerr.New("validate aliases nest too deeply"), "line", node.Line)
	}
	if node.Kind != yaml.MappingNode {
		return zerr.With(zerr.New("validate must be a mapping of label to path"), "line", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := resolveAlias(node.Content[i]), resolveAlias(node.Content[i+1])

		if isMerge(key) {
			if err := appendMerge(entries, value, depth+1); err != nil {
				return err
			}
			continue
		}

		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return zerr.With(zerr.New("validate entries must map a label to a path"), "line", key.Line)
		}
		*entries = append(*entries, domain.ValidationEntry{Label: key.Value, Path: value.Value})
	}
	return nil
}

// appendMerge expands the value of a merge key: a mapping or a sequence of mappings.
func appendMerge(entries *ValidateDTO, value *yaml.Node, depth int) error {
	if value.Kind != yaml.SequenceNode {
		return appendEntries(entries, value, depth)
	}
	for _, item := range value.Content {
		if err := appendEntries(entries, item, depth); err != nil {
			return err
		}
	}
	return nil
}

func isMerge(key *yaml.Node) bool {
	return key.Kind == yaml.ScalarNode && key.Value == "<<" && key.ShortTag() == "!!merge"
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for i := 0; node.Kind == yaml.AliasNode && node.Alias != nil && i < maxAliasDepth; i++ {
		node = node.Alias
	}
	return node
}
