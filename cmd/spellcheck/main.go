// Command spellcheck is the external REPL/CLI collaborator described in
// §6: it is responsible for dictionary-file plumbing, timing/memory
// reporting and interactive I/O, none of which are part of the core
// correction engine.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitry-maltsev/spelling-corrector/config"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "spellcheck",
		Short: "Symmetric-delete spelling correction",
		Long:  `A spelling-correction engine backed by a symmetric-delete index and a bounded OSA edit-distance verifier.`,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (optional, overlays defaults)")

	rootCmd.AddCommand(createBuildCmd())
	rootCmd.AddCommand(createCorrectCmd())
	rootCmd.AddCommand(createReplCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadConfig() config.Config {
	if configPath == "" {
		return config.Default()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config %q: %v", configPath, err)
	}
	return cfg
}
