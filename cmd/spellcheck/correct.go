package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

func createCorrectCmd() *cobra.Command {
	var corpusPath string
	var maxEditDistance int
	var topK int

	cmd := &cobra.Command{
		Use:   "correct <dictionary> <word>",
		Short: "Build the index once and print suggestions for a single word",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()
			c, _, err := buildEngine(cfg, args[0], corpusPath)
			if err != nil {
				log.Fatalf("build failed: %v", err)
			}

			if maxEditDistance < 0 {
				maxEditDistance = cfg.DefaultQueryDistance
			}
			if topK <= 0 {
				topK = cfg.DefaultTopK
			}

			suggestions, err := c.Correct(args[1], maxEditDistance, topK)
			if err != nil {
				log.Fatalf("correct failed: %v", err)
			}

			for _, s := range suggestions {
				fmt.Println(s.String())
			}
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "", "optional JSON frequency corpus to merge in")
	cmd.Flags().IntVar(&maxEditDistance, "max-distance", -1, "max edit distance (defaults to config)")
	cmd.Flags().IntVar(&topK, "top-k", 0, "number of suggestions to return (defaults to config)")

	return cmd
}
