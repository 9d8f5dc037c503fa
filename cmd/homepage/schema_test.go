package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestSchemaCommandPrintsLibrary(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"schema"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("schema command failed: %v", err)
	}

	var doc struct {
		Blocks []struct {
			Name string `yaml:"name"`
		} `yaml:"blocks"`
		Streams []streamEntry `yaml:"streams"`
	}
	if err := yaml.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("schema output is not YAML: %v", err)
	}
	if len(doc.Blocks) != 7 || doc.Blocks[0].Name != "hero_section" {
		t.Fatalf("unexpected blocks: %+v", doc.Blocks)
	}
	if len(doc.Streams) != 7 || doc.Streams[6].Types[0] != "newsletter_section" {
		t.Fatalf("unexpected streams: %+v", doc.Streams)
	}
}

func TestSeedCommandImportsFixture(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "seed.db")
	fixturePath := filepath.Join("..", "..", "fixtures", "home.yaml")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"seed", "--db", dbPath, "--log-level", "error", fixturePath})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		databasePath, logLevel = "", ""
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("seed command failed: %v", err)
	}
	if !strings.Contains(out.String(), "1 created, 0 updated, 7 streams saved") {
		t.Fatalf("unexpected output %q", out.String())
	}
}
