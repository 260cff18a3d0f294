package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/bibl/internal/config"
	"github.com/mrlokans/bibl/internal/entrypoint"
)

// SeedCommand loads the reference catalog into an empty store.
type SeedCommand struct {
	cfg           *config.Config
	NoLegacyReset bool
}

func NewSeedCommand(cfg *config.Config) *SeedCommand {
	return &SeedCommand{cfg: cfg}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	fs.BoolVar(&cmd.NoLegacyReset, "no-legacy-reset", !cmd.cfg.Seed.LegacyReset, "Keep an existing legacy sample catalog instead of replacing it")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Insert the reference authors, genres and books when the catalog has no books.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}
	return fs.Parse(args)
}

func (cmd *SeedCommand) Run() error {
	db := entrypoint.Connect(cmd.cfg)
	defer db.Close()

	seedCfg := cmd.cfg.Seed
	seedCfg.LegacyReset = !cmd.NoLegacyReset

	result, err := entrypoint.SeedCatalog(context.Background(), db, seedCfg)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}
