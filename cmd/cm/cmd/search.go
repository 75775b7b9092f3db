package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/carmatch/internal/api/client"
)

func searchCmd() *cobra.Command {
	var (
		params apiclient.SearchParams
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find the cars that best match your criteria",
		Long: "Scores every car in the inventory against the given criteria and prints\n" +
			"the best matches with their match percentage. Criteria left out are\n" +
			"ignored. With --all the whole inventory is listed unscored.",
		Example: `  # Petrol BMWs from around 2020 under $30k
  cm search --brand BMW --year 2020 --max-price 30000 --fuel-type Petrol

  # Show how each criterion contributed
  cm search --brand Tesla --seats 5 --explain

  # The whole inventory
  cm search --all --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newClient()
			out := cmd.OutOrStdout()

			if all {
				cars, err := c.AllCars(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(out, cars)
				}
				printCars(out, cars)
				return nil
			}

			cars, err := c.Search(cmd.Context(), &params)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(out, cars)
			}
			if len(cars) == 0 {
				fmt.Fprintln(out, "No cars found.")
				return nil
			}
			printSearchResults(out, cars, params.Explain)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&params.Brand, "brand", "", "brand, matched exactly (case-insensitive)")
	f.StringVar(&params.Model, "model", "", "model, partial matches earn partial credit")
	f.IntVar(&params.Year, "year", 0, "model year, nearby years earn partial credit")
	f.IntVar(&params.Horsepower, "horsepower", 0, "desired horsepower")
	f.Float64Var(&params.MinPrice, "min-price", 0, "lower price bound")
	f.Float64Var(&params.MaxPrice, "max-price", 0, "upper price bound")
	f.IntVar(&params.Seats, "seats", 0, "exact number of seats")
	f.StringVar(&params.FuelType, "fuel-type", "", "fuel type, e.g. Petrol, Diesel, Electric")
	f.StringVar(&params.EngineType, "engine-type", "", "engine type, partial matches earn partial credit")
	f.BoolVar(&params.Explain, "explain", false, "show the per-criterion breakdown")
	f.BoolVar(&all, "all", false, "list every car without scoring")

	return cmd
}
