package config

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/a8m/envsubst"
	"github.com/pkg/errors"

	"go.viam.com/framealign/logging"
	"go.viam.com/framealign/referenceframe"
)

// ReadMap reads a map document from the given file. Environment variables referenced as ${VAR} are
// substituted before decoding.
func ReadMap(filePath string, logger logging.Logger) (*referenceframe.Map, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read map %q", filePath)
	}
	return MapFromReader(filePath, bytes.NewReader(buf), logger)
}

// MapFromReader reads a map document from the given reader and specifies
// where, if applicable, the file the reader originated from. A nil logger logs to the global logger.
func MapFromReader(originalPath string, r io.Reader, logger logging.Logger) (*referenceframe.Map, error) {
	if logger == nil {
		logger = logging.Global()
	}
	var conf MapConfig
	if err := decode(r, &conf); err != nil {
		return nil, errors.Wrapf(err, "cannot parse map %q", originalPath)
	}
	m, err := conf.ToMap()
	if err != nil {
		return nil, errors.Wrapf(err, "invalid map %q", originalPath)
	}
	logger.Debugw("read map",
		"path", originalPath,
		"name", m.Name(),
		"frame", m.Frame().Name(),
		"reference_positions", m.ReferencePositions().Len(),
		"bounded", m.Bounds() != nil,
	)
	return m, nil
}

// ReadTransform reads a transform document from the given file. Environment variables referenced as ${VAR}
// are substituted before decoding.
func ReadTransform(filePath string, logger logging.Logger) (*referenceframe.Transform, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read transform %q", filePath)
	}
	return TransformFromReader(filePath, bytes.NewReader(buf), logger)
}

// TransformFromReader reads a transform document from the given reader and specifies
// where, if applicable, the file the reader originated from.
func TransformFromReader(originalPath string, r io.Reader, logger logging.Logger) (*referenceframe.Transform, error) {
	if logger == nil {
		logger = logging.Global()
	}
	var conf TransformConfig
	if err := decode(r, &conf); err != nil {
		return nil, errors.Wrapf(err, "cannot parse transform %q", originalPath)
	}
	tf, err := conf.ToTransform()
	if err != nil {
		return nil, errors.Wrapf(err, "invalid transform %q", originalPath)
	}
	logger.Debugw("read transform", "path", originalPath, "from", tf.From().Name(), "to", tf.To().Name())
	return tf, nil
}

func decode(r io.Reader, v interface{}) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
