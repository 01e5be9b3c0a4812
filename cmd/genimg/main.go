package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v9"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// envConfig is the only place credentials are read from the process
// environment; they are handed to the library explicitly.
type envConfig struct {
	OpenAIKey        string `env:"OPENAI_API_KEY"`
	ReplicateToken   string `env:"REPLICATE_API_TOKEN"`
	OpenAIBaseURL    string `env:"OPENAI_BASE_URL"`
	ReplicateBaseURL string `env:"REPLICATE_BASE_URL"`
}

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg := envConfig{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}
