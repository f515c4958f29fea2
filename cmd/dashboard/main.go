// Read-only operator dashboard: prints the overview counters and the
// student roster, or one student's plants and diary.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/Hafizfauzi02/fowra-backend/internal/client"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080/api", "API base URL")
	adminToken := flag.String("token", os.Getenv("ADMIN_TOKEN"), "Operator token")
	studentID := flag.Int64("student", 0, "Show one student's plants and diary instead of the overview")
	flag.Parse()

	ctx := context.Background()
	c := client.New(*baseURL, *adminToken)

	if *studentID != 0 {
		if err := printStudent(ctx, c, *studentID); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := printOverview(ctx, c); err != nil {
		log.Fatal(err)
	}
}

func printOverview(ctx context.Context, c *client.AdminClient) error {
	stats, err := c.GetStats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Students: %d  Plants: %d  Entries today: %d\n\n",
		stats.TotalStudents, stats.TotalPlants, stats.EntriesToday)

	students, err := c.GetStudents(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tYEAR\tCLASS\tEMAIL\tREGISTERED")
	for _, s := range students {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\n",
			s.ID, s.Name, s.Year, s.Class, s.Email, s.CreatedAt.Format("2006-01-02"))
	}
	return w.Flush()
}

func printStudent(ctx context.Context, c *client.AdminClient, id int64) error {
	plants, err := c.GetStudentPlants(ctx, id)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PLANT\tSUN\tWATER ML\tPH\tHARVEST DAYS\tHEIGHT CM")
	for _, p := range plants {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.1f\t%d\t%.0f\n",
			p.Name, p.SunExposure, p.WaterAmount, p.SoilPH, p.HarvestDays, p.Height)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	entries, err := c.GetStudentDiary(ctx, id)
	if err != nil {
		return err
	}

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tWATER\tMIST\tFERT\tROTATE\tNOTES")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%v\t%v\t%v\t%v\t%s\n",
			e.EntryDate, e.Watering, e.Misting, e.Fertilizing, e.Rotating, e.Notes)
	}
	return w.Flush()
}
