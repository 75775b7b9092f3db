package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	domain "github.com/donaldgifford/carmatch/pkg/types"
)

const timeLayout = "2006-01-02 15:04"

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	cyan   = color.New(color.FgCyan, color.Bold)
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	return table
}

// matchColor picks the color for a match percentage.
func matchColor(p int) *color.Color {
	switch {
	case p >= 80:
		return green
	case p >= 50:
		return yellow
	default:
		return red
	}
}

func printSearchResults(w io.Writer, cars []domain.ScoredCar, explain bool) {
	table := newTable(w, "#", "ID", "Car", "Year", "HP", "Price", "Seats", "Fuel", "Engine", "Match")
	for i := range cars {
		c := &cars[i]
		table.Append([]string{
			strconv.Itoa(i + 1),
			strconv.FormatInt(c.ID, 10),
			c.Brand + " " + c.Model,
			optInt(c.Year),
			optInt(c.Horsepower),
			optPrice(c.Price),
			optInt(c.Seats),
			c.FuelType,
			c.EngineType,
			matchColor(c.MatchPercentage).Sprintf("%d%%", c.MatchPercentage),
		})
	}
	table.Render()

	if !explain {
		return
	}
	for i := range cars {
		printBreakdown(w, &cars[i])
	}
}

func printBreakdown(w io.Writer, c *domain.ScoredCar) {
	if len(c.Breakdown) == 0 {
		return
	}
	cyan.Fprintf(w, "\n%s %s (#%d)\n", c.Brand, c.Model, c.ID)

	names := make([]string, 0, len(c.Breakdown))
	for name := range c.Breakdown {
		names = append(names, name)
	}
	sort.Strings(names)

	table := newTable(w, "Criterion", "Score", "Weight")
	for _, name := range names {
		s := c.Breakdown[name]
		table.Append([]string{name, strconv.Itoa(s.Score), strconv.Itoa(s.Weight)})
	}
	table.Render()
}

func printCars(w io.Writer, cars []domain.Car) {
	table := newTable(w, "ID", "Car", "Year", "HP", "Price", "Seats", "Fuel", "Engine")
	for i := range cars {
		c := &cars[i]
		table.Append([]string{
			strconv.FormatInt(c.ID, 10),
			c.Brand + " " + c.Model,
			optInt(c.Year),
			optInt(c.Horsepower),
			optPrice(c.Price),
			optInt(c.Seats),
			c.FuelType,
			c.EngineType,
		})
	}
	table.Render()
}

func printCarDetail(w io.Writer, c *domain.CarWithDetails) {
	cyan.Fprintf(w, "%s %s\n", c.Brand, c.Model)

	table := newTable(w, "Field", "Value")
	table.AppendBulk([][]string{
		{"ID", strconv.FormatInt(c.ID, 10)},
		{"Year", optInt(c.Year)},
		{"Horsepower", optInt(c.Horsepower)},
		{"Price", optPrice(c.Price)},
		{"Seats", optInt(c.Seats)},
		{"Fuel", c.FuelType},
		{"Engine", c.EngineType},
		{"Mileage", optInt(c.Mileage)},
		{"Color", c.Color},
	})
	if d := c.Details; d != nil {
		table.AppendBulk([][]string{
			{"Transmission", d.Transmission},
			{"Drive", d.DriveType},
			{"Body", d.BodyType},
			{"Engine size", optFloat(d.EngineSize, "%.1f L")},
			{"Service history", d.ServiceHistory},
		})
	}
	table.Render()

	if len(c.Equipment) > 0 {
		fmt.Fprintln(w)
		printEquipment(w, c.Equipment)
	}
}

func printEquipment(w io.Writer, equipment []domain.Equipment) {
	table := newTable(w, "Equipment", "Category")
	for i := range equipment {
		table.Append([]string{equipment[i].Name, equipment[i].Category})
	}
	table.Render()
}

func printFavorites(w io.Writer, favorites []domain.FavoriteCar) {
	table := newTable(w, "ID", "Car", "Year", "Price", "Saved")
	for i := range favorites {
		f := &favorites[i]
		table.Append([]string{
			strconv.FormatInt(f.ID, 10),
			f.Brand + " " + f.Model,
			optInt(f.Year),
			optPrice(f.Price),
			f.FavoritedAt.Format(timeLayout),
		})
	}
	table.Render()
}

func printReviews(w io.Writer, s *domain.ReviewSummary) {
	cyan.Fprintf(w, "Car #%d: %d review(s), average %.1f/5\n", s.CarID, s.Count, s.AverageRating)
	if s.Count == 0 {
		return
	}

	table := newTable(w, "ID", "Rating", "Title", "By", "Date", "Comment")
	for i := range s.Reviews {
		r := &s.Reviews[i]
		comment := ""
		if r.Comment != nil {
			comment = truncate(*r.Comment, 50)
		}
		table.Append([]string{
			strconv.FormatInt(r.ID, 10),
			stars(r.Rating),
			truncate(r.Title, 40),
			r.Username,
			r.CreatedAt.Format(timeLayout),
			comment,
		})
	}
	table.Render()
}

func printUser(w io.Writer, u *domain.User) {
	table := newTable(w, "Field", "Value")
	table.AppendBulk([][]string{
		{"ID", u.ID},
		{"Username", u.Username},
		{"Created", u.CreatedAt.Format(timeLayout)},
		{"Updated", u.UpdatedAt.Format(timeLayout)},
	})
	table.Render()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func success(w io.Writer, format string, args ...any) {
	green.Fprintf(w, format+"\n", args...)
}

func notice(w io.Writer, format string, args ...any) {
	yellow.Fprintf(w, format+"\n", args...)
}

func stars(rating int) string {
	s := ""
	for i := 1; i <= domain.MaxRating; i++ {
		if i <= rating {
			s += "★"
		} else {
			s += "☆"
		}
	}
	return s
}

func optInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func optPrice(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("$%.0f", *v)
}

func optFloat(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
