package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/trezcool/safari/core/catalog"
)

func (cli *commandLine) universities(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("universities", flag.ExitOnError)
	search := cmd.String("search", "", "Match against name or description.")
	location := cmd.String("location", "", "Exact location match.")
	sortKey := cmd.String("sort", "name", "Sort key: name, rating or students.")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	// the browse screen is public; no guard
	list := cli.catalog.BrowseUniversities(ctx)
	list = catalog.FilterUniversities(list, catalog.UniversityFilter{Search: *search, Location: *location})
	catalog.SortUniversities(list, *sortKey)

	for _, u := range list {
		fmt.Printf("[%d] %s - %s (est. %s, %s students, %.1f)\n",
			u.ID, u.Name, u.Location, u.Established, u.Students, u.Rating)
		if u.Website != "" {
			fmt.Printf("     %s\n", u.Website)
		}
	}
	return nil
}

func (cli *commandLine) programs(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("programs", flag.ExitOnError)
	university := cmd.Int("university", 0, "Only programs of this university.")
	degree := cmd.String("degree", "", "Filter by degree type.")
	status := cmd.String("status", "", "Filter by status (OPEN or CLOSED).")
	search := cmd.String("search", "", "Match against name or description.")
	sortKey := cmd.String("sort", "name", "Sort key: name or tuition.")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	var (
		list []catalog.Program
		err  error
	)
	if *university != 0 {
		list, err = cli.catalog.ProgramsByUniversity(ctx, *university)
	} else {
		list, err = cli.catalog.Programs(ctx)
	}
	if err != nil {
		return err
	}

	list = catalog.FilterPrograms(list, catalog.ProgramFilter{
		Search: *search, DegreeType: *degree, Status: *status,
	})
	catalog.SortPrograms(list, *sortKey)

	for _, p := range list {
		fmt.Printf("[%d] %s (%s, %.1f yrs) $%.0f/yr - %s\n",
			p.ID, p.Name, p.DegreeType, p.DurationYears, p.TuitionFeeUSD, p.Status)
	}
	return nil
}
