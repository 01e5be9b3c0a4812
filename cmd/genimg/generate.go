package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/genimg/genimg"
	"github.com/genimg/genimg/internal/log"
	"github.com/genimg/genimg/internal/schema"
	"github.com/spf13/cobra"
)

func newGenerateCmd(cfg envConfig) *cobra.Command {
	var (
		providerTag string
		model       string
		size        string
		quality     string
		format      string
		compression int
		background  string
		count       int
		outputDir   string
		filename    string
		inputsFile  string
		timeout     time.Duration
		debug       bool
	)

	cmd := &cobra.Command{
		Use:   "generate <prompt>",
		Short: "Generate images from a text prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			ctx = log.NewContext(ctx, log.New(os.Stderr, debug))

			opts := genimg.Options{
				Prompt:   args[0],
				Provider: genimg.Provider(providerTag),
				Model:    model,
				Size:     size,
				Quality:  quality,
				Format:   format,

				Background: background,
				Count:      count,
				Debug:      debug,
			}
			if cmd.Flags().Changed("compression") {
				opts.Compression = &compression
			}
			if inputsFile != "" {
				raw, err := os.ReadFile(inputsFile)
				if err != nil {
					return fmt.Errorf("reading inputs file: %w", err)
				}
				extra, err := schema.ValidateInputs(raw)
				if err != nil {
					return err
				}
				opts.ExtraInputs = extra
			}

			client := genimg.NewClient(genimg.Config{
				OpenAIKey:        cfg.OpenAIKey,
				ReplicateToken:   cfg.ReplicateToken,
				OpenAIBaseURL:    cfg.OpenAIBaseURL,
				ReplicateBaseURL: cfg.ReplicateBaseURL,
			})

			fmt.Println(color.CyanString("Generating %d image(s) via %s...", max(count, 1), orDefault(providerTag, string(genimg.ProviderOpenAI))))

			paths, err := client.Generate(ctx, genimg.Request{
				Options:   opts,
				OutputDir: outputDir,
				Filename:  filename,
				Timeout:   timeout,
			})
			for _, p := range paths {
				fmt.Println(color.GreenString("Saved %s", p))
			}
			return err
		},
	}

	cmd.Flags().StringVar(&providerTag, "provider", "openai", "image provider (openai or replicate)")
	cmd.Flags().StringVar(&model, "model", "", "model override (provider default when empty)")
	cmd.Flags().StringVar(&size, "size", "", "image size as WIDTHxHEIGHT")
	cmd.Flags().StringVar(&quality, "quality", "", "image quality (openai only)")
	cmd.Flags().StringVar(&format, "format", "", "output format: png, jpeg or webp (openai only)")
	cmd.Flags().IntVar(&compression, "compression", 0, "output compression 0-100 (openai, jpeg/webp only)")
	cmd.Flags().StringVar(&background, "background", "", "background: transparent or opaque (openai only)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of images to generate")
	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "output directory")
	cmd.Flags().StringVar(&filename, "filename", "", "explicit output filename")
	cmd.Flags().StringVar(&inputsFile, "inputs-file", "", "JSON file with extra model inputs (replicate only)")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall generation timeout")
	cmd.Flags().BoolVar(&debug, "debug", false, "log request payloads and save details")

	return cmd
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
