package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/framealign/config"
	"go.viam.com/framealign/logging"
	"go.viam.com/framealign/referenceframe"
	spatial "go.viam.com/framealign/spatialmath"
)

type residualSummary struct {
	RMS       float64     `json:"rms"`
	Mean      float64     `json:"mean"`
	Max       float64     `json:"max"`
	Residuals [][]float64 `json:"residuals"`
}

type alignOutput struct {
	Transform *config.TransformConfig `json:"transform"`
	Residuals residualSummary         `json:"residuals"`
}

type positionsOutput struct {
	Frame     string      `json:"frame"`
	Positions [][]float64 `json:"positions"`
}

// AlignAction estimates the transform between the frames of two maps and prints it as a transform document.
func AlignAction(c *cli.Context) error {
	logger := newLogger(c)

	from, err := config.ReadMap(c.Path(alignFlagFromMap), logger)
	if err != nil {
		return err
	}
	to, err := config.ReadMap(c.Path(alignFlagToMap), logger)
	if err != nil {
		return err
	}
	for _, m := range []*referenceframe.Map{from, to} {
		if err := warnOutOfBounds(m, logger); err != nil {
			return err
		}
	}

	alignment, err := referenceframe.EstimateAlignment(
		from.ReferencePositions(),
		to.ReferencePositions(),
		c.String(alignFlagAxes),
		referenceframe.WithMaxResidual(c.Float64(alignFlagMaxResidual)),
		referenceframe.WithLogger(logger.Sublogger("align")),
	)
	if err != nil {
		return errors.Wrapf(err, "cannot align map %q with map %q", from.Name(), to.Name())
	}

	residuals := make([][]float64, 0, len(alignment.Residuals))
	for _, r := range alignment.Residuals {
		residuals = append(residuals, spatial.VectorToArray(r))
	}
	return printJSON(c.App.Writer, alignOutput{
		Transform: config.NewTransformConfig(alignment.Transform),
		Residuals: residualSummary{
			RMS:       alignment.RMS,
			Mean:      alignment.Mean,
			Max:       alignment.Max,
			Residuals: residuals,
		},
	})
}

// TransformAction moves the points given as arguments from one frame to another.
func TransformAction(c *cli.Context) error {
	logger := newLogger(c)

	tf, err := config.ReadTransform(c.Path(transformFlagTransform), logger)
	if err != nil {
		return err
	}
	if c.NArg() == 0 {
		return errors.New("expected at least one point written as x,y,z")
	}
	points := make([]r3.Vector, 0, c.NArg())
	for _, arg := range c.Args().Slice() {
		p, err := spatial.ParseVector(arg)
		if err != nil {
			return err
		}
		points = append(points, p)
	}

	from := referenceframe.NewFrame(c.String(transformFlagFrom))
	to := referenceframe.NewFrame(c.String(transformFlagTo))
	positions, err := referenceframe.NewPositions(points, from)
	if err != nil {
		return err
	}
	moved, err := referenceframe.TransformPositions(tf, positions, from, to)
	if err != nil {
		return err
	}
	return printJSON(c.App.Writer, positionsOutput{Frame: moved.Frame().Name(), Positions: moved.ToArray()})
}

// MapSchemaAction prints the JSON schema of a map document.
func MapSchemaAction(c *cli.Context) error {
	return printJSON(c.App.Writer, config.MapSchema())
}

// TransformSchemaAction prints the JSON schema of a transform document.
func TransformSchemaAction(c *cli.Context) error {
	return printJSON(c.App.Writer, config.TransformSchema())
}

// newLogger logs to the app's error writer so that standard output stays machine readable.
func newLogger(c *cli.Context) logging.Logger {
	logger := logging.NewBlankLogger("framealign")
	logger.AddAppender(logging.NewWriterAppender(c.App.ErrWriter))
	if !c.Bool(debugFlag) {
		logger.SetLevel(logging.INFO)
	}
	return logger
}

func warnOutOfBounds(m *referenceframe.Map, logger logging.Logger) error {
	if m.Bounds() == nil {
		return nil
	}
	for i, p := range m.ReferencePositions().Positions() {
		inside, err := m.Bounds().Contains(p)
		if err != nil {
			return err
		}
		if !inside {
			logger.Warnw("reference position outside map bounds", "map", m.Name(), "index", i, "position", p.ToArray())
		}
	}
	return nil
}

func printJSON(w io.Writer, v interface{}) error {
	buf, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	printf(w, "%s", buf)
	return nil
}

// printf prints a message with a newline.
func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}
