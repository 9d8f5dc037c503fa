package main

import (
	"github.com/npohome/internal/block"
	"github.com/npohome/internal/page"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the block library and page layout as YAML",
	RunE:  runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

type schemaDocument struct {
	Page    *block.Block   `yaml:"page"`
	Blocks  []*block.Block `yaml:"blocks"`
	Streams []streamEntry  `yaml:"streams"`
}

type streamEntry struct {
	Name  string   `yaml:"name"`
	Label string   `yaml:"label"`
	Types []string `yaml:"types"`
}

func runSchema(cmd *cobra.Command, args []string) error {
	doc := schemaDocument{
		Page:   page.Fields,
		Blocks: block.Default().Blocks(),
	}
	for _, s := range page.Streams() {
		doc.Streams = append(doc.Streams, streamEntry{Name: s.Name, Label: s.Label, Types: s.Tags()})
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
