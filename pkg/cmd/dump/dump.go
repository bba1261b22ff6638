package dump

import (
	"bufio"
	"context"
	"io"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/mpapenbr/f1-telemetry-producer/log"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/cmd/util"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/config"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/model"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/session"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/stream"
)

func NewDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "writes the messages of a run to stdout (one json object per line)",
		Long: `Loads the dataset and prints the messages which would be sent.
No connection to the ingestion service is made.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runDump(cmd.Context(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&config.DriverID,
		"driver-id",
		"",
		"driver id used in messages (default: driver of selector)")
	return cmd
}

func runDump(ctx context.Context, out io.Writer) error {
	sel, err := model.ParseSelector(config.Selector)
	if err != nil {
		return session.NewDataSourceError(err)
	}
	src, closer, err := util.NewSource(ctx)
	if err != nil {
		return err
	}
	defer closer()
	samples, err := src.Load(ctx, sel)
	if err != nil {
		return session.NewDataSourceError(err)
	}
	driverID := config.DriverID
	if driverID == "" {
		driverID = sel.Driver
	}

	w := bufio.NewWriter(out)
	seq := stream.New(samples, driverID)
	opts := protojson.MarshalOptions{EmitUnpopulated: true}
	for msg, err := range seq.All(ctx) {
		if err != nil {
			return err
		}
		data, err := opts.Marshal(msg)
		if err != nil {
			return err
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return err
		}
	}
	log.Debug("dump finished", log.Int("messages", seq.Emitted()))
	return w.Flush()
}
