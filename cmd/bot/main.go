// Command bot is a minimal bot for the judge. Each round it buys a drill and
// steers every other ship it owns toward a fixed rally point.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zeusync/proboj/internal/injector"
	"github.com/zeusync/proboj/sdk/go/client"
	"github.com/zeusync/proboj/sdk/go/rules"
)

func main() {
	var configPath, rulesPath string
	flag.StringVar(&configPath, "config", "", "path to the YAML client config")
	flag.StringVar(&rulesPath, "rules", "", "path to a YAML or JSON game constant table")
	flag.Parse()

	cfg := client.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = client.LoadConfigFile(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
	}

	constants := rules.Default()
	if rulesPath != "" {
		var err error
		if constants, err = rules.LoadFile(rulesPath); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load rules: %v\n", err)
			os.Exit(1)
		}
	}

	injector.InitializeClient(cfg).Run(newRallyBot(constants))
}
