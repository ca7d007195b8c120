// Command protoschema writes JSON Schema documents for the messages the judge
// and a bot exchange: the inbound state line and the payload of every turn
// variant.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/zeusync/proboj/sdk/go/client"
	"github.com/zeusync/proboj/sdk/go/turn"
)

type document struct {
	file        string
	title       string
	description string
	value       any
}

var documents = []document{
	{"state.schema.json", "State message", "First line of every message the judge sends; the second line is a single \".\"", new(client.StateMessage)},
	{"turn-buy.schema.json", "Buy turn", "data payload of a turn with type 0", new(turn.BuyTurn)},
	{"turn-move.schema.json", "Move turn", "data payload of a turn with type 1", new(turn.MoveTurn)},
	{"turn-load.schema.json", "Load turn", "data payload of a turn with type 2", new(turn.LoadTurn)},
	{"turn-siphon.schema.json", "Siphon turn", "data payload of a turn with type 3", new(turn.SiphonTurn)},
	{"turn-shoot.schema.json", "Shoot turn", "data payload of a turn with type 4", new(turn.ShootTurn)},
	{"turn-repair.schema.json", "Repair turn", "data payload of a turn with type 5", new(turn.RepairTurn)},
}

func main() {
	var outDir string
	flag.StringVar(&outDir, "out", "", "directory to write the JSON schemas to")
	flag.Parse()

	if outDir == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	for name, schema := range buildSchemas() {
		if err := writeSchema(filepath.Join(outDir, name), schema); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write schema %s: %v\n", name, err)
			os.Exit(1)
		}
	}
}

func buildSchemas() map[string]*jsonschema.Schema {
	reflector := jsonschema.Reflector{}

	schemas := make(map[string]*jsonschema.Schema, len(documents))
	for _, doc := range documents {
		schema := reflector.Reflect(doc.value)
		schema.Title = doc.title
		schema.Description = doc.description
		schemas[doc.file] = schema
	}
	return schemas
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
