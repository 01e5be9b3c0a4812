package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/genimg/genimg"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newModelsCmd() *cobra.Command {
	var providerTag string

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List known image models per provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			models, err := genimg.Models(providerTag)
			if err != nil {
				return err
			}

			byProvider := lo.GroupBy(models, func(m genimg.ModelInfo) genimg.Provider {
				return m.Provider
			})
			for _, p := range []genimg.Provider{genimg.ProviderOpenAI, genimg.ProviderReplicate} {
				entries, ok := byProvider[p]
				if !ok {
					continue
				}
				fmt.Println(color.CyanString("%s:", p))
				for _, m := range entries {
					marker := "  "
					if m.Default {
						marker = color.GreenString("* ")
					}
					fmt.Printf("  %s%s (%s) sizes: %s\n", marker, m.ID, m.Name, strings.Join(m.Sizes, ", "))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&providerTag, "provider", "", "limit listing to one provider")
	return cmd
}
