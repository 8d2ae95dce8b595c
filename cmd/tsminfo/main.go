// Command tsminfo stretches a generated test signal and prints the layout,
// pitch drift and seam smoothness for each scale factor.
//
// Usage:
//
//	tsminfo [flags]
//
// Examples:
//
//	tsminfo --scale 0.5,1.2
//	tsminfo --signal chirp --freq 200 --window 2048 --ramp 0.5
//	tsminfo --config preset.yaml --workers 4
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	ossignal "os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/cwbudde/algo-timescale/dsp/core"
	"github.com/cwbudde/algo-timescale/dsp/signal"
	"github.com/cwbudde/algo-timescale/dsp/timescale"
	"github.com/cwbudde/algo-timescale/internal/config"
	"github.com/cwbudde/algo-timescale/internal/log"
	"github.com/cwbudde/algo-timescale/measure/pitch"
	"github.com/cwbudde/algo-timescale/measure/seam"
	"github.com/spf13/cobra"
)

var errUnknownLevel = errors.New("unknown log level")

func main() {
	ctx, stop := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		stop()
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

type flagValues struct {
	configPath string
	logLevel   string
	window     int
	ramp       float64
	scales     []float64
	workers    int
	kind       string
	freq       float64
	length     int
	sampleRate float64
	seed       int64
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var fv flagValues
	def := config.Default()

	rootCmd := &cobra.Command{
		Use:           "tsminfo",
		Short:         "Stretch a test signal and report layout, pitch drift and seam smoothness",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, fv)
			if err != nil {
				return err
			}
			return run(cmd.Context(), stdout, cfg)
		},
	}
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	flags := rootCmd.Flags()
	flags.StringVarP(&fv.configPath, "config", "c", "", "YAML preset applied before flags")
	flags.StringVar(&fv.logLevel, "log-level", def.LogLevel, "log level (debug, info, warn, error)")
	flags.IntVarP(&fv.window, "window", "w", def.Stretch.WindowLength, "window length in samples (even)")
	flags.Float64VarP(&fv.ramp, "ramp", "r", def.Stretch.RampProportion, "ramp length as a proportion of the window [0,1]")
	flags.Float64SliceVarP(&fv.scales, "scale", "s", def.Stretch.ScaleFactors, "comma-separated scale factors")
	flags.IntVar(&fv.workers, "workers", def.Stretch.Workers, "parallel synthesis workers")
	flags.StringVar(&fv.kind, "signal", def.Signal.Kind, "test signal (sine, ramp, chirp, noise)")
	flags.Float64Var(&fv.freq, "freq", def.Signal.Frequency, "sine frequency or chirp start frequency in Hz")
	flags.IntVarP(&fv.length, "length", "n", def.Signal.Length, "signal length in samples")
	flags.Float64Var(&fv.sampleRate, "sample-rate", def.Signal.SampleRate, "sample rate in Hz")
	flags.Int64Var(&fv.seed, "seed", def.Signal.Seed, "random seed for the noise signal")

	return rootCmd
}

// resolveConfig layers defaults, the optional preset file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command, fv flagValues) (config.Config, error) {
	cfg, err := config.Load(fv.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = fv.logLevel
	}
	if flags.Changed("window") {
		cfg.Stretch.WindowLength = fv.window
	}
	if flags.Changed("ramp") {
		cfg.Stretch.RampProportion = fv.ramp
	}
	if flags.Changed("scale") {
		cfg.Stretch.ScaleFactors = fv.scales
	}
	if flags.Changed("workers") {
		cfg.Stretch.Workers = fv.workers
	}
	if flags.Changed("signal") {
		cfg.Signal.Kind = fv.kind
	}
	if flags.Changed("freq") {
		cfg.Signal.Frequency = fv.freq
	}
	if flags.Changed("length") {
		cfg.Signal.Length = fv.length
	}
	if flags.Changed("sample-rate") {
		cfg.Signal.SampleRate = fv.sampleRate
	}
	if flags.Changed("seed") {
		cfg.Signal.Seed = fv.seed
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	level, ok := log.ParseLevel(cfg.LogLevel)
	if !ok {
		return config.Config{}, fmt.Errorf("%w: %q", errUnknownLevel, cfg.LogLevel)
	}
	log.SetLevel(level)
	return cfg, nil
}

// generate renders the configured test signal, peak-normalized to the
// configured amplitude.
func generate(cfg config.Config) ([]float64, error) {
	sc := cfg.Signal
	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(sc.SampleRate)},
		signal.WithSeed(sc.Seed),
	)

	var (
		x   []float64
		err error
	)
	switch sc.Kind {
	case config.SignalSine:
		x, err = gen.Sine(sc.Frequency, 1, sc.Length)
	case config.SignalRamp:
		x, err = gen.SineRamp(1, sc.Length)
	case config.SignalChirp:
		x, err = gen.Chirp(sc.Frequency, sc.EndFrequency, 1, sc.Length)
	case config.SignalNoise:
		x, err = gen.WhiteNoise(1, sc.Length)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownSignal, sc.Kind)
	}
	if err != nil {
		return nil, err
	}

	log.Infof("generated %s signal: %d samples at %.0f Hz", sc.Kind, len(x), gen.SampleRate())
	return signal.Normalize(x, sc.Amplitude)
}

func run(ctx context.Context, w io.Writer, cfg config.Config) error {
	input, err := generate(cfg)
	if err != nil {
		return err
	}

	sc := cfg.Stretch
	s, err := timescale.Configure(input, sc.WindowLength, sc.RampProportion, 1,
		core.WithSampleRate(cfg.Signal.SampleRate), core.WithWorkers(sc.Workers))
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Scale\tIn\tOut\tBins\tStride\tRamp\tDrift [cents]\tSeams\tMax Edge\tMax Interior\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-----\t--\t---\t----\t------\t----\t-------------\t-----\t--------\t------------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, f := range sc.ScaleFactors {
		if err := s.SetScaleFactor(f); err != nil {
			log.Warnf("skipping scale %.3f: %v", f, err)
			continue
		}

		out, err := s.SynthesizeContext(ctx)
		if err != nil {
			return err
		}
		l := s.Layout()
		log.Debugf("scale %.3f: %+v", f, l)

		drift := "-"
		if cents, err := pitch.Drift(input, out, cfg.Signal.SampleRate); err == nil {
			drift = fmt.Sprintf("%+.2f", cents)
		} else {
			log.Debugf("pitch drift unavailable at scale %.3f: %v", f, err)
		}

		rep := seam.Analyze(out, l)
		status := "smooth"
		if !rep.Smooth() {
			status = "steps"
		}

		if _, err := fmt.Fprintf(tw, "%.3f\t%d\t%d\t%d\t%d\t%d\t%s\t%s\t%.6f\t%.6f\n",
			f,
			l.InputLength,
			l.OutputLength,
			l.NumBins,
			l.ScaledHalfWindow,
			l.RampLength,
			drift,
			status,
			rep.MaxBoundaryStep,
			rep.MaxInteriorStep,
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	return tw.Flush()
}
