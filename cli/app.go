// Package cli contains the framealign command line interface.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"

	"go.viam.com/framealign/referenceframe"
)

const (
	// Flags.
	alignFlagFromMap     = "from-map"
	alignFlagToMap       = "to-map"
	alignFlagAxes        = "axes"
	alignFlagMaxResidual = "max-residual"

	transformFlagTransform = "transform"
	transformFlagFrom      = "from"
	transformFlagTo        = "to"

	debugFlag = "debug"
)

var app = &cli.App{
	Name:            "framealign",
	Usage:           "align coordinate frames and move points between them",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    debugFlag,
			Aliases: []string{"vvv"},
			Usage:   "enable debug logging",
		},
	},
	Commands: []*cli.Command{
		{
			Name:      "align",
			Usage:     "estimate the transform between the frames of two maps from their reference positions",
			UsageText: "framealign align --from-map <file> --to-map <file> [other options]",
			Flags: []cli.Flag{
				&cli.PathFlag{
					Name:     alignFlagFromMap,
					Required: true,
					Usage:    "map `FILE` whose frame the transform maps from",
				},
				&cli.PathFlag{
					Name:     alignFlagToMap,
					Required: true,
					Usage:    "map `FILE` whose frame the transform maps to",
				},
				&cli.StringFlag{
					Name:  alignFlagAxes,
					Value: "z",
					Usage: "axes the frames may be rotated about, e.g. z or xyz",
				},
				&cli.Float64Flag{
					Name:  alignFlagMaxResidual,
					Value: referenceframe.DefaultMaxResidual,
					Usage: "largest accepted residual coordinate after alignment; 0 accepts any",
				},
			},
			Action: AlignAction,
		},
		{
			Name:      "transform",
			Usage:     "move points from one frame to another",
			UsageText: "framealign transform --transform <file> --from <frame> --to <frame> [--] x,y,z [x,y,z ...]",
			ArgsUsage: "x,y,z [x,y,z ...]",
			Flags: []cli.Flag{
				&cli.PathFlag{
					Name:     transformFlagTransform,
					Required: true,
					Usage:    "transform `FILE` relating the two frames",
				},
				&cli.StringFlag{
					Name:     transformFlagFrom,
					Required: true,
					Usage:    "frame the points are given in",
				},
				&cli.StringFlag{
					Name:     transformFlagTo,
					Required: true,
					Usage:    "frame to express the points in",
				},
			},
			Action: TransformAction,
		},
		{
			Name:            "schema",
			Usage:           "print the JSON schema of a document",
			HideHelpCommand: true,
			Subcommands: []*cli.Command{
				{
					Name:   "map",
					Usage:  "print the JSON schema of a map document",
					Action: MapSchemaAction,
				},
				{
					Name:   "transform",
					Usage:  "print the JSON schema of a transform document",
					Action: TransformSchemaAction,
				},
			},
		},
	},
}

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	app.Writer = out
	app.ErrWriter = errOut
	return app
}
