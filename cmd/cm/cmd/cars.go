package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/carmatch/internal/api/client"
)

func carsCmd() *cobra.Command {
	carsRoot := &cobra.Command{
		Use:   "cars",
		Short: "Browse the car inventory",
	}

	carsRoot.AddCommand(
		carsListCmd(),
		carsGetCmd(),
		carsEquipmentCmd(),
	)

	return carsRoot
}

func carsListCmd() *cobra.Command {
	var params apiclient.ListCarsParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cars with filters and pagination",
		Example: `  cm cars list
  cm cars list --brand Volvo --order-by price --limit 20
  cm cars list --min-year 2019 --max-price 25000 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().ListCars(cmd.Context(), &params)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}
			if len(resp.Cars) == 0 {
				fmt.Fprintln(out, "No cars found.")
				return nil
			}
			printCars(out, resp.Cars)
			fmt.Fprintf(out, "Showing %d-%d of %d\n",
				resp.Offset+1, resp.Offset+len(resp.Cars), resp.Total)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&params.Brand, "brand", "", "filter by brand")
	f.StringVar(&params.FuelType, "fuel-type", "", "filter by fuel type")
	f.IntVar(&params.MinYear, "min-year", 0, "minimum model year")
	f.IntVar(&params.MaxYear, "max-year", 0, "maximum model year")
	f.Float64Var(&params.MaxPrice, "max-price", 0, "maximum price")
	f.IntVar(&params.Limit, "limit", 0, "page size (server default 50)")
	f.IntVar(&params.Offset, "offset", 0, "number of cars to skip")
	f.StringVar(&params.OrderBy, "order-by", "", "sort field (id, price, year, horsepower)")

	return cmd
}

func carsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show a car with its details and equipment",
		Example: `  cm cars get 42`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("car", args[0])
			if err != nil {
				return err
			}

			car, err := newClient().GetCar(cmd.Context(), id)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), car)
			}
			printCarDetail(cmd.OutOrStdout(), car)
			return nil
		},
	}
}

func carsEquipmentCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "equipment <id>",
		Short:   "List a car's equipment",
		Example: `  cm cars equipment 42`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("car", args[0])
			if err != nil {
				return err
			}

			equipment, err := newClient().ListEquipment(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, equipment)
			}
			if len(equipment) == 0 {
				fmt.Fprintln(out, "No equipment listed.")
				return nil
			}
			printEquipment(out, equipment)
			return nil
		},
	}
}

func parseID(kind, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s id %q", kind, raw)
	}
	return id, nil
}
