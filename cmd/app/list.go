package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/to-dy/pgapex-builder/api/client"
)

var errRejected = errors.New("pgapex api rejected the request")

type fetchFunc func(ctx context.Context) (*client.Response, error)

func listCommands(e *env) []*cobra.Command {
	var themeID, applicationID, regionID string

	templates := listCommand("templates", "List the templates of a theme", func(ctx context.Context) (*client.Response, error) {
		return e.templates.GetTemplates(ctx, themeID)
	})
	templates.Flags().StringVar(&themeID, "theme-id", "", "theme to list templates of")

	themes := listCommand("themes", "List the themes of an application", func(ctx context.Context) (*client.Response, error) {
		return e.templates.GetThemes(ctx, applicationID)
	})
	themes.Flags().StringVar(&applicationID, "application-id", "", "application to list themes of")

	navigations := listCommand("navigations", "List the navigations of an application", func(ctx context.Context) (*client.Response, error) {
		return e.navigations.GetNavigations(ctx, applicationID)
	})
	navigations.Flags().StringVar(&applicationID, "application-id", "", "application to list navigations of")

	region := listCommand("region", "Show a navigation region", func(ctx context.Context) (*client.Response, error) {
		return e.regions.GetNavigationRegion(ctx, regionID)
	})
	region.Flags().StringVar(&regionID, "region-id", "", "region to show")
	_ = region.MarkFlagRequired("region-id")

	return []*cobra.Command{
		listCommand("schemas", "List the database schemas", func(ctx context.Context) (*client.Response, error) {
			return e.databases.GetSchemas(ctx)
		}),
		listCommand("page-templates", "List the page templates", func(ctx context.Context) (*client.Response, error) {
			return e.templates.GetPageTemplates(ctx)
		}),
		listCommand("region-templates", "List the region templates", func(ctx context.Context) (*client.Response, error) {
			return e.templates.GetRegionTemplates(ctx)
		}),
		listCommand("navigation-templates", "List the navigation templates", func(ctx context.Context) (*client.Response, error) {
			return e.templates.GetNavigationTemplates(ctx)
		}),
		templates,
		themes,
		navigations,
		region,
	}
}

func listCommand(use, short string, fetch fetchFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			res, err := fetch(ctx)
			if err != nil {
				return err
			}

			return printResponse(cmd.OutOrStdout(), res)
		},
	}
}

// printResponse writes the payload as indented JSON, or one line per
// upstream error when the request was rejected.
func printResponse(w io.Writer, res *client.Response) error {
	if res.HasErrors() {
		for _, e := range res.Errors {
			pointer := "-"
			if e.Source != nil && e.Source.Pointer != "" {
				pointer = e.Source.Pointer
			}
			fmt.Fprintf(w, "%s: %s\n", pointer, e.Detail)
		}
		return errRejected
	}

	if !res.HasData() {
		_, err := fmt.Fprintln(w, "null")
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, res.Data, "", "  "); err != nil {
		return errors.Wrap(err, "format response")
	}
	out.WriteByte('\n')

	_, err := out.WriteTo(w)
	return err
}
