package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/genimg/genimg"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const envFile = ".env"

func newSetupCmd(cfg envConfig) *cobra.Command {
	var (
		openAIKey      string
		replicateToken string
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Store API credentials in .env, or report credential status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if openAIKey == "" && replicateToken == "" {
				return reportCredentials(cfg)
			}

			// Keep whatever else already lives in the file.
			values, err := godotenv.Read(envFile)
			if err != nil {
				values = map[string]string{}
			}
			if openAIKey != "" {
				values[genimg.EnvOpenAIKey] = openAIKey
			}
			if replicateToken != "" {
				values[genimg.EnvReplicateToken] = replicateToken
			}
			if err := godotenv.Write(values, envFile); err != nil {
				return fmt.Errorf("writing %s: %w", envFile, err)
			}
			fmt.Println(color.GreenString("Credentials written to %s", envFile))
			return nil
		},
	}

	cmd.Flags().StringVar(&openAIKey, "openai-key", "", "OpenAI API key to store")
	cmd.Flags().StringVar(&replicateToken, "replicate-token", "", "Replicate API token to store")
	return cmd
}

// reportCredentials prints the status of every provider credential and
// aggregates all missing ones into a single failure.
func reportCredentials(cfg envConfig) error {
	var result *multierror.Error

	report := func(name, value string) {
		if value == "" {
			fmt.Println(color.RedString("%s: not set", name))
			result = multierror.Append(result, fmt.Errorf("%s is not set", name))
			return
		}
		fmt.Println(color.GreenString("%s: configured", name))
	}

	report(genimg.EnvOpenAIKey, cfg.OpenAIKey)
	report(genimg.EnvReplicateToken, cfg.ReplicateToken)

	return result.ErrorOrNil()
}
