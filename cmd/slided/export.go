package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EdgarSahakyann/Power-point--project/internal/deck"
	"github.com/EdgarSahakyann/Power-point--project/internal/logger"
	"github.com/EdgarSahakyann/Power-point--project/internal/persist"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export-svg <deck> <out.svg>",
		Short: "Render a saved deck as a single SVG document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := deck.NewStore()
			slides := deck.NewSlideFactory(deck.NewShapeFactory())
			if err := persist.NewFiles().Load(store, slides, args[0]); err != nil {
				return err
			}
			if err := persist.NewSVGExporter(a.themes()).Export(store, args[1]); err != nil {
				return err
			}
			logger.Infof("Exported %d slides to %s", store.Len(), args[1])
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d slides to %s\n", store.Len(), args[1])
			return nil
		},
	}
}
