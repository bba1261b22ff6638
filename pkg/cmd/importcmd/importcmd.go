package importcmd

import (
	"context"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1-telemetry-producer/log"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/cmd/util"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/config"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/model"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/source/csvfile"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/source/dbsource"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/source/jsonfile"
)

var (
	lapNumber int
	lapTime   string
	replace   bool
)

func NewImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "stores a lap from a csv or json export in the database",
		Long: `Reads the lap of the selector's driver from --file (format by --source)
and stores it for use with --source postgres.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runImport(cmd.Context(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&lapNumber, "lap-number", 1, "number of the lap")
	cmd.Flags().StringVar(&lapTime, "lap-time", "",
		"lap time (default: derived from the sample timestamps)")
	cmd.Flags().BoolVar(&replace, "replace", false,
		"remove existing laps of the selector first")
	return cmd
}

func runImport(ctx context.Context, out io.Writer) error {
	sel, err := model.ParseSelector(config.Selector)
	if err != nil {
		return err
	}
	var samples []model.TelemetrySample
	switch config.Source {
	case util.SourceCSV:
		samples, err = csvfile.New(config.File, csvfile.WithSort(true)).Load(ctx, sel)
	case util.SourceJSON:
		samples, err = jsonfile.New(config.File, jsonfile.WithSort(true)).Load(ctx, sel)
	default:
		return fmt.Errorf("import requires --source csv or json")
	}
	if err != nil {
		return err
	}
	lap := &dbsource.Lap{Selector: sel, LapNumber: lapNumber}
	if lapTime != "" {
		d, err := util.ParseDuration("lap-time", lapTime)
		if err != nil {
			return err
		}
		lap.LapTimeMs = d.Milliseconds()
	} else {
		lap.LapTimeMs = samples[len(samples)-1].Timestamp.Sub(samples[0].Timestamp).Milliseconds()
	}

	pool, err := util.OpenDB(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	var id int
	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if replace {
			n, err := dbsource.DeleteLaps(ctx, tx, sel)
			if err != nil {
				return err
			}
			log.Info("removed laps", log.Int("laps", n))
		}
		id, err = dbsource.CreateLap(ctx, tx, lap, samples)
		return err
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "imported lap %d (id %d) with %d samples\n", lapNumber, id, len(samples))
	return nil
}
