package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mushroomsink/mushrooms/internal/config"
	"github.com/mushroomsink/mushrooms/internal/tui"
	"go.uber.org/zap"
)

func runTUI(page string) error {
	if err := validatePage(page); err != nil {
		return err
	}

	cfg, ds, err := loadDataset()
	if err != nil {
		return err
	}

	log().Debug("starting tui",
		zap.String("page", page),
		zap.Int("companies", len(ds.Companies)),
		zap.Int("articles", len(ds.Articles)))

	// The TUI owns the terminal, so it gets no log output.
	return tui.Run(tui.RunOpts{
		Cfg:  cfg,
		Data: ds,
		Page: strings.ToLower(page),
		Log:  zap.NewNop(),
	})
}

func validatePage(page string) error {
	if page == "" || slices.Contains(config.Pages(), strings.ToLower(page)) {
		return nil
	}
	return fmt.Errorf("unknown page %q (valid: %s)", page, strings.Join(config.Pages(), ", "))
}
