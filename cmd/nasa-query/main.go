package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/nhGeri/NASA-MCP/internal/catalog"
	"github.com/nhGeri/NASA-MCP/internal/config"
	"github.com/nhGeri/NASA-MCP/internal/logging"
	"github.com/nhGeri/NASA-MCP/internal/nasa"
)

func main() {
	root := &cobra.Command{
		Use:          "nasa-query",
		Short:        "Run NASA Images API operations and print their JSON results",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("nasa-api-url", config.DefaultAPIURL, "NASA Images API base URL")
	root.PersistentFlags().String("http-timeout", config.DefaultHTTPTimeout.String(), "Timeout of each request to the NASA API")
	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().Int("captions-preview-chars", 1000, "Length of the caption preview")

	var params nasa.SearchParams
	search := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			params.Query = args[0]
			resp, err := client.Search(cmd.Context(), params)
			if err != nil {
				return err
			}
			return outputResponse(resp)
		},
	}
	search.Flags().StringVar(&params.MediaType, "media-type", "", "image, video or audio")
	search.Flags().StringVar(&params.YearStart, "year-start", "", "Earliest year of creation")
	search.Flags().StringVar(&params.YearEnd, "year-end", "", "Latest year of creation")
	search.Flags().IntVar(&params.PageSize, "page-size", nasa.DefaultPageSize, "Number of results (max 100)")
	search.Flags().IntVar(&params.Page, "page", 0, "Result page, starting at 1")

	root.AddCommand(
		search,
		idCommand("assets", "List the files of an item", func(ctx context.Context, c *nasa.Client, id string) (any, error) {
			return c.AssetFiles(ctx, id)
		}),
		idCommand("metadata", "Fetch the metadata document of an item", func(ctx context.Context, c *nasa.Client, id string) (any, error) {
			return c.Metadata(ctx, id)
		}),
		idCommand("captions", "Fetch the captions of a video", func(ctx context.Context, c *nasa.Client, id string) (any, error) {
			return c.Captions(ctx, id)
		}),
		&cobra.Command{
			Use:   "famous",
			Short: "Print the curated catalog of famous images",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				collection, err := catalog.Famous()
				if err != nil {
					return err
				}
				return outputResponse(collection)
			},
		},
	)

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("nasa-query: %v", err)
	}
}

func idCommand(name, short string, fn func(context.Context, *nasa.Client, string) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " NASA_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			resp, err := fn(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}
			return outputResponse(resp)
		},
	}
}

func newClient() (*nasa.Client, error) {
	timeout, err := config.HTTPTimeout()
	if err != nil {
		return nil, err
	}
	client, err := nasa.NewClient(nasa.Config{
		BaseURL:      config.APIURL(),
		Timeout:      timeout,
		PreviewChars: config.CaptionsPreviewSize(),
		Logger:       logging.New(logging.NewLogger(config.LogLevel()).WithName("nasa-query")),
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return client, nil
}

func outputResponse(resp any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
