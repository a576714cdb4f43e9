package benchplot

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewCommand returns the benchplot command. Its flags default to the
// fixed file names the benchmark binaries write.
func NewCommand() *cobra.Command {
	var (
		aspFile, stdFile, output string
		verbose                  bool
	)
	cmd := &cobra.Command{
		Use:   "benchplot",
		Short: "Chart actually_smart_pointer against std::shared_ptr benchmark times",
		Long: `Reads benchmark_asp.csv and benchmark_std.csv from the current directory
and draws execution time against iterations (log scale) for both into
benchmark_time.png.

Run ./benchmark_asp and ./benchmark_std from the build directory first.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), verbose)
			defer func() { _ = logger.Sync() }()

			report, err := NewReport(
				WithInputs(aspFile, stdFile),
				WithOutput(output),
				WithStdout(cmd.OutOrStdout()),
				WithLogger(logger),
			)
			if err != nil {
				return err
			}
			return report.Run(cmd.Context())
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&aspFile, "asp", DefaultASPFile, "actually_smart_pointer benchmark results")
	flags.StringVar(&stdFile, "std", DefaultStdFile, "std::shared_ptr benchmark results")
	flags.StringVarP(&output, "output", "o", DefaultOutputFile, "chart file; the extension picks the format (png, svg, pdf)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log debug information to stderr")
	return cmd
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

// RunCLI runs the benchplot command with args, excluding the program
// name.
func RunCLI(args []string) error {
	cmd := NewCommand()
	// cobra reads os.Args when given nil
	cmd.SetArgs(append([]string{}, args...))
	return cmd.ExecuteContext(context.Background())
}
