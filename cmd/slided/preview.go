package main

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/EdgarSahakyann/Power-point--project/internal/deck"
	"github.com/EdgarSahakyann/Power-point--project/internal/event"
	"github.com/EdgarSahakyann/Power-point--project/internal/logger"
	"github.com/EdgarSahakyann/Power-point--project/internal/persist"
	"github.com/EdgarSahakyann/Power-point--project/internal/tui"
)

func newPreviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <deck>",
		Short: "Page through a saved deck in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := deck.NewStore()
			slides := deck.NewSlideFactory(deck.NewShapeFactory())
			if err := persist.NewFiles().Load(store, slides, args[0]); err != nil {
				return err
			}

			themes := a.themes()
			if err := themes.SetTheme(a.cfg.Preview.Theme); err != nil {
				logger.Warnf("Preview theme: %v", err)
			}

			t, err := tui.New()
			if err != nil {
				return err
			}
			defer t.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			p := tui.NewPreview(t, filepath.Base(args[0]), store.All(), themes, event.NewManager())
			return p.Run(ctx)
		},
	}
}
