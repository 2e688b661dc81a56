package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pstankie/adms-gen/internal/adms"
	"github.com/pstankie/adms-gen/internal/fetcher"
	"github.com/pstankie/adms-gen/internal/maidenhead"
	"github.com/pstankie/adms-gen/internal/pipeline"
	"github.com/pstankie/adms-gen/internal/rxf"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the memory-channel CSV",
	Long: `Generate an ADMS-14 import CSV for repeaters within a radius of a grid locator.

The reference point is the center of the 6-character Maidenhead locator.
Radius 0 is valid and produces a header-only file. Use --prefix and --bands
to narrow the selection, --fill to pad the file to the full 900 channels.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// All parameter validation happens before the fetch.
		opts, err := parseGenerateOpts(cmd)
		if err != nil {
			return err
		}
		outPath, _ := cmd.Flags().GetString("output")
		if outPath == "" {
			outPath = cfg.Output.Path
		}

		log := zap.L().With(zap.String("command", "generate"))
		log.Info("starting run",
			zap.Float64("radius_km", opts.RadiusKm),
			zap.Float64("lat", opts.Center.Lat),
			zap.Float64("lon", opts.Center.Lon),
			zap.String("output", outPath),
		)

		f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
			UserAgent:  cfg.Source.UserAgent,
			Timeout:    time.Duration(cfg.Source.TimeoutSecs) * time.Second,
			MaxRetries: cfg.Source.MaxRetries,
		})
		src := rxf.NewSource(f, cfg.Source.URL)

		out, closeOut, err := openOutput(outPath)
		if err != nil {
			return err
		}
		defer closeOut()

		sum, err := pipeline.Run(ctx, src, out, opts)
		if err != nil {
			return eris.Wrap(err, "generate")
		}

		if sum.Encoded == 0 {
			log.Warn("no repeaters in range, wrote header only")
		}

		return nil
	},
}

func init() {
	generateCmd.Flags().String("locator", "", "6-character Maidenhead locator of the reference point (required)")
	generateCmd.Flags().Float64("radius", 0, "search radius in kilometers (required)")
	generateCmd.Flags().StringP("output", "o", "", "output CSV path, \"-\" for stdout (default from config)")
	generateCmd.Flags().Int("start-channel", 0, "first channel number to assign (default from config)")
	generateCmd.Flags().String("on-overflow", "", "policy when selection exceeds 900 channels: truncate or fail")
	generateCmd.Flags().String("prefix", "", "keep only callsigns with this prefix (e.g. SR9)")
	generateCmd.Flags().StringSlice("bands", nil, "restrict to bands, e.g. 2m,70cm")
	generateCmd.Flags().Bool("fill", false, "pad the file with empty rows up to 900 channels")
	_ = generateCmd.MarkFlagRequired("locator")
	_ = generateCmd.MarkFlagRequired("radius")
	rootCmd.AddCommand(generateCmd)
}

// parseGenerateOpts validates flags and builds pipeline options. Errors here
// abort the run before any network traffic.
func parseGenerateOpts(cmd *cobra.Command) (pipeline.Options, error) {
	locator, _ := cmd.Flags().GetString("locator")
	radius, _ := cmd.Flags().GetFloat64("radius")
	prefix, _ := cmd.Flags().GetString("prefix")
	bands, _ := cmd.Flags().GetStringSlice("bands")

	center, err := maidenhead.Decode(locator)
	if err != nil {
		return pipeline.Options{}, err
	}
	if radius < 0 {
		return pipeline.Options{}, eris.Errorf("generate: radius must not be negative, got %g", radius)
	}
	if _, err := pipeline.ParseBands(bands); err != nil {
		return pipeline.Options{}, err
	}

	startChannel, _ := cmd.Flags().GetInt("start-channel")
	if startChannel == 0 {
		startChannel = cfg.Output.StartChannel
	}

	policyStr, _ := cmd.Flags().GetString("on-overflow")
	if policyStr == "" {
		policyStr = cfg.Output.OnOverflow
	}
	policy, err := adms.ParseOverflowPolicy(policyStr)
	if err != nil {
		return pipeline.Options{}, err
	}

	fill, _ := cmd.Flags().GetBool("fill")
	if !cmd.Flags().Changed("fill") {
		fill = cfg.Output.Fill
	}

	return pipeline.Options{
		Center:       center,
		RadiusKm:     radius,
		Prefix:       prefix,
		Bands:        bands,
		StartChannel: startChannel,
		Overflow:     policy,
		Fill:         fill,
	}, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "generate: create %s", path)
	}
	return f, func() { _ = f.Close() }, nil
}
