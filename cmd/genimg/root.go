package main

import "github.com/spf13/cobra"

func newRootCmd(cfg envConfig) *cobra.Command {
	root := &cobra.Command{
		Use:   "genimg",
		Short: "Generate images from text prompts via OpenAI or Replicate",
		Long: `genimg turns text prompts into image files on disk.

Examples:
  $ genimg generate "a watercolor fox in the snow"
  $ genimg generate --provider replicate --size 512x768 "neon city at dusk"
  $ genimg models --provider openai
  $ genimg setup --openai-key sk-...`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGenerateCmd(cfg))
	root.AddCommand(newModelsCmd())
	root.AddCommand(newSetupCmd(cfg))
	return root
}
