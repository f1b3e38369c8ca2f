package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/traPtitech/thumbparam/service/thumbnail/preset"
	"github.com/traPtitech/thumbparam/utils/optional"
)

var regionFlags = []string{"region-position", "region-x", "region-y", "region-width", "region-height", "region-relative"}

// paramCommand コマンドライン引数からParameterを生成して出力するコマンド
func paramCommand() *cobra.Command {
	var (
		width, height   int
		scale           float64
		keepAspectRatio bool
		quality         float32
		pc              preset.Config
		region          preset.RegionConfig
		source          string
	)

	cmd := cobra.Command{
		Use:   "param",
		Short: "Resolve a thumbnail parameter from flags and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := getLogger()
			defer logger.Sync()

			flags := cmd.Flags()
			cfg := pc
			if flags.Changed("width") || flags.Changed("height") {
				cfg.Width, cfg.Height = optional.From(width), optional.From(height)
			}
			if flags.Changed("scale") {
				cfg.Scale = optional.From(scale)
			}
			if flags.Changed("keep-aspect-ratio") {
				cfg.KeepAspectRatio = optional.From(keepAspectRatio)
			}
			if flags.Changed("quality") {
				cfg.Quality = optional.From(quality)
			}
			if lo.SomeBy(regionFlags, flags.Changed) {
				cfg.Region = &region
			}

			p, err := cfg.Build()
			if err != nil {
				logger.Error("failed to resolve parameter", zap.Error(err))
				return err
			}
			logger.Debug("parameter resolved", zap.Object("parameter", p))

			out, err := newParamOutput("", p, source)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), out)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&width, "width", 0, "thumbnail width")
	flags.IntVar(&height, "height", 0, "thumbnail height")
	flags.Float64Var(&scale, "scale", 0, "scaling factor (takes precedence over width and height)")
	flags.BoolVar(&keepAspectRatio, "keep-aspect-ratio", true, "keep the aspect ratio of the source image")
	flags.Float32Var(&quality, "quality", 0, "compression quality")
	flags.StringVar(&pc.Format, "format", "", "output format")
	flags.StringVar(&pc.FormatType, "format-type", "", "output format type")
	flags.StringVar(&pc.ImageType, "image-type", "", "pixel format of the thumbnail")
	flags.StringVar(&pc.Resizer, "resizer", "", "resizer name")
	flags.StringSliceVar(&pc.Filters, "filters", nil, "filters applied in order (e.g. rotate:90,grayscale)")
	flags.StringVar(&region.Position, "region-position", "", "position of the source region")
	flags.IntVar(&region.X, "region-x", 0, "left edge of the source region")
	flags.IntVar(&region.Y, "region-y", 0, "top edge of the source region")
	flags.IntVar(&region.Width, "region-width", 0, "width of the source region")
	flags.IntVar(&region.Height, "region-height", 0, "height of the source region")
	flags.Float64Var(&region.Relative, "region-relative", 0, "size of the source region relative to the image")
	flags.StringVar(&source, "source", "", "source image size (WIDTHxHEIGHT) used to print the target size")

	return &cmd
}
