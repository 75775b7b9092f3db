package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/carmatch/api/openapi"
	"github.com/donaldgifford/carmatch/internal/config"
	"github.com/donaldgifford/carmatch/pkg/logger"
)

func openapiCommand() *cobra.Command {
	var asYAML bool

	c := &cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document",
		Long:  "Prints the OpenAPI 3.1 document of the HTTP API without connecting to a database.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, api, err := newServer(&config.Config{}, nil, nil, logger.Discard())
			if err != nil {
				return err
			}

			spec := openapi.NewSpec(api)
			render := spec.JSON
			if asYAML {
				render = spec.YAML
			}

			data, err := render()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(data, '\n'))
			return err
		},
	}
	c.Flags().BoolVar(&asYAML, "yaml", false, "print YAML instead of JSON")

	return c
}
