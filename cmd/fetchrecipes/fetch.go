package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"fetchrecipes/networking"
	"fetchrecipes/types"
)

func fetchCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "fetch [request-type]",
		Short: "Fetch one request type and print the sorted recipes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := networking.AllRecipes
			if len(args) == 1 {
				parsed, err := networking.ParseRequestType(args[0])
				if err != nil {
					return err
				}
				rt = parsed
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger, _, err := newLogger(cfg, false)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			result := a.pipeline.Fetch(cmd.Context(), rt)
			if !result.OK() {
				return result.Err()
			}
			if asJSON {
				return printJSON(os.Stdout, result.Recipes())
			}
			renderTable(os.Stdout, result.Recipes())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

type recipeJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Cuisine   string `json:"cuisine"`
	PhotoURL  string `json:"photo_url,omitempty"`
	SourceURL string `json:"source_url,omitempty"`
	VideoURL  string `json:"video_url,omitempty"`
}

func printJSON(w io.Writer, views []types.RecipeView) error {
	out := make([]recipeJSON, 0, len(views))
	for _, rv := range views {
		out = append(out, recipeJSON{
			ID:        rv.ID,
			Name:      rv.Name,
			Cuisine:   rv.Cuisine,
			PhotoURL:  types.URLString(rv.PhotoURL),
			SourceURL: types.URLString(rv.SourceURL),
			VideoURL:  types.URLString(rv.VideoURL),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func renderTable(w io.Writer, views []types.RecipeView) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Cuisine", "Name", "Source", "Video"})
	for _, rv := range views {
		video := ""
		if rv.VideoURL != nil {
			video = "yes"
		}
		tw.AppendRow(table.Row{rv.Cuisine, rv.Name, types.URLString(rv.SourceURL), video})
	}
	tw.AppendFooter(table.Row{"", fmt.Sprintf("%d recipes", len(views)), "", ""})
	tw.Render()
}
