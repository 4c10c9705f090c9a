package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"heyfarmer/internal/domain/county"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCountiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "counties",
		Short: "Inspect the county directory",
	}

	var metro string
	list := &cobra.Command{
		Use:   "list",
		Short: "Print every county, or those of one metro",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			counties := county.All()
			if metro != "" {
				counties = county.InMetro(county.Metro(metro))
			}

			return printCounties(cmd, counties)
		},
	}
	list.Flags().StringVar(&metro, "metro", "", "only counties of this metro, e.g. puget_sound")

	resolve := &cobra.Command{
		Use:   "resolve ID|SLUG",
		Short: "Resolve a county id or URL slug",
		Example: `  heyfarmerctl counties resolve walla-walla-county
  heyfarmerctl counties resolve king`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := county.ID(args[0])
			if !county.IsValid(id) {
				var ok bool
				if id, ok = county.Unslugify(args[0]); !ok {
					return errors.Errorf("unknown county %q", args[0])
				}
			}
			found, _ := county.Lookup(id)

			return printCounties(cmd, []county.County{found})
		},
	}

	nearest := &cobra.Command{
		Use:   "nearest LAT LON",
		Short: "Find the county whose seat is closest to a point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.Wrap(err, "invalid latitude")
			}
			lon, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return errors.Wrap(err, "invalid longitude")
			}

			return printCounties(cmd, []county.County{county.Nearest(orb.Point{lon, lat})})
		},
	}

	cmd.AddCommand(list, resolve, nearest)

	return cmd
}

func printCounties(cmd *cobra.Command, counties []county.County) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSLUG\tMETRO\tSEAT")
	for _, c := range counties {
		metro := string(c.Metro)
		if metro == "" {
			metro = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Slug(), metro, c.Seat)
	}

	return w.Flush()
}
