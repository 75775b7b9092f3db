package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/carmatch/internal/store"
	domain "github.com/donaldgifford/carmatch/pkg/types"
)

// seedFile is the layout of a car inventory seed file.
type seedFile struct {
	Cars []domain.CarWithDetails `yaml:"cars"`
}

// carUpserter is the slice of store.Store that seeding needs.
type carUpserter interface {
	UpsertCar(ctx context.Context, c *domain.CarWithDetails) error
	CountCars(ctx context.Context) (int, error)
}

func seedCommand() *cobra.Command {
	var (
		file    string
		migrate bool
	)

	c := &cobra.Command{
		Use:   "seed",
		Short: "Load a car inventory from a YAML file",
		Long: "Reads cars, with optional details and equipment, from a YAML file and upserts them. " +
			"Cars with an id replace the existing record; cars without one are inserted. " +
			"Send SIGHUP to a running server to drop its cached catalog.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd, file, migrate)
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "cars.yaml", "seed file path")
	c.Flags().BoolVar(&migrate, "migrate", true, "apply pending migrations first")

	return c
}

func init() {
	rootCmd.AddCommand(seedCommand())
}

func runSeed(cmd *cobra.Command, file string, migrate bool) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	f, err := os.Open(file) //nolint:gosec // seed path from trusted CLI flag
	if err != nil {
		return fmt.Errorf("opening seed file: %w", err)
	}
	defer f.Close()

	cars, err := readSeed(f)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), cfg.Database.PoolSize)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	if migrate {
		if err := st.Migrate(ctx); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
	}

	total, err := seedCars(ctx, st, cars)
	if err != nil {
		return err
	}

	log.Info("seed complete", "file", file, "upserted", len(cars), "inventory", total)
	return nil
}

// readSeed decodes and validates a seed file.
func readSeed(r io.Reader) ([]domain.CarWithDetails, error) {
	var sf seedFile
	if err := yaml.NewDecoder(r).Decode(&sf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("seed file is empty")
		}
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}

	var errs []error
	for i := range sf.Cars {
		c := &sf.Cars[i]
		if c.Brand == "" || c.Model == "" {
			errs = append(errs, fmt.Errorf("car %d: brand and model are required", i+1))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return sf.Cars, nil
}

// seedCars upserts every car and returns the resulting inventory size.
func seedCars(ctx context.Context, s carUpserter, cars []domain.CarWithDetails) (int, error) {
	for i := range cars {
		if err := s.UpsertCar(ctx, &cars[i]); err != nil {
			return 0, fmt.Errorf("car %d (%s %s): %w", i+1, cars[i].Brand, cars[i].Model, err)
		}
	}
	return s.CountCars(ctx)
}
