package logging

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
	"go.viam.com/test"
)

type residual struct {
	Index int
	RMS   float64
	note  string
}

// assertLogMatches reads one line and compares it to expected. The time must parse with DefaultTimeFormatStr but
// its value is ignored, and the caller's file must match but its line number only needs to be a number.
func assertLogMatches(t *testing.T, actual *bytes.Buffer, expected string) time.Time {
	t.Helper()

	output, err := actual.ReadString('\n')
	test.That(t, err, test.ShouldBeNil)

	actualParts := strings.Split(strings.TrimSuffix(output, "\n"), "\t")
	expectedParts := strings.Split(expected, "\t")
	test.That(t, len(actualParts), test.ShouldEqual, len(expectedParts))

	ts, err := time.Parse(DefaultTimeFormatStr, actualParts[0])
	test.That(t, err, test.ShouldBeNil)

	// level, then the logger name when there is one
	idx := 1
	for ; !strings.Contains(expectedParts[idx], ".go:"); idx++ {
		test.That(t, actualParts[idx], test.ShouldEqual, expectedParts[idx])
	}

	actualFilename, actualLineNumber, found := strings.Cut(actualParts[idx], ":")
	test.That(t, found, test.ShouldBeTrue)
	expectedFilename, _, _ := strings.Cut(expectedParts[idx], ":")
	test.That(t, actualFilename, test.ShouldEqual, expectedFilename)
	_, err = strconv.Atoi(actualLineNumber)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, actualParts[idx+1], test.ShouldEqual, expectedParts[idx+1])
	if len(actualParts) == idx+2 {
		return ts
	}

	// field order is stable, but compare as maps to keep expectations readable
	expectedMap := make(map[string]any)
	test.That(t, json.Unmarshal([]byte(expectedParts[idx+2]), &expectedMap), test.ShouldBeNil)
	actualMap := make(map[string]any)
	test.That(t, json.Unmarshal([]byte(actualParts[idx+2]), &actualMap), test.ShouldBeNil)
	test.That(t, actualMap, test.ShouldResemble, expectedMap)
	return ts
}

func TestConsoleOutputFormat(t *testing.T) {
	notStdout := &bytes.Buffer{}
	logger := newImpl("", DEBUG, false, NewWriterAppender(notStdout))

	logger.Infow("aligned")
	assertLogMatches(t, notStdout,
		"2024-05-01T09:12:09.459-0400\tINFO\tlogging/impl_test.go:1\taligned")

	logger.Debugw("read map", "name", "robot", "reference_positions", 3)
	assertLogMatches(t, notStdout,
		"2024-05-01T09:12:09.459-0400\tDEBUG\tlogging/impl_test.go:1\tread map\t"+
			`{"name":"robot","reference_positions":3}`)

	// only exported struct fields are encoded
	logger.Warnw("large residual", "residual", residual{Index: 2, RMS: 0.5, note: "dropped"})
	assertLogMatches(t, notStdout,
		"2024-05-01T09:12:09.459Z\tWARN\tlogging/impl_test.go:1\tlarge residual\t"+
			`{"residual":{"Index":2,"RMS":0.5}}`)

	logger.Errorw("cannot align", "position", []float64{1, 2, 3})
	assertLogMatches(t, notStdout,
		"2024-05-01T09:12:09.459Z\tERROR\tlogging/impl_test.go:1\tcannot align\t"+
			`{"position":[1,2,3]}`)
}

func TestUTC(t *testing.T) {
	notStdout := &bytes.Buffer{}
	logger := NewBlankLogger("utc")
	logger.AddAppender(NewWriterAppender(notStdout))

	logger.Infow("in utc")
	ts := assertLogMatches(t, notStdout, "2024-05-01T09:12:09.459Z\tINFO\tutc\tlogging/impl_test.go:1\tin utc")
	_, offset := ts.Zone()
	test.That(t, offset, test.ShouldEqual, 0)
}

func TestLevelFiltering(t *testing.T) {
	notStdout := &bytes.Buffer{}
	logger := NewBlankLogger("")
	logger.AddAppender(NewWriterAppender(notStdout))
	logger.SetLevel(WARN)
	test.That(t, logger.GetLevel(), test.ShouldEqual, WARN)

	logger.Debugw("dropped")
	logger.Infow("dropped")
	test.That(t, notStdout.Len(), test.ShouldEqual, 0)

	logger.Warnw("kept")
	assertLogMatches(t, notStdout, "2024-05-01T09:12:09.459Z\tWARN\tlogging/impl_test.go:1\tkept")

	// takes effect without adding an appender
	logger.SetLevel(DEBUG)
	logger.Debugw("kept too")
	assertLogMatches(t, notStdout, "2024-05-01T09:12:09.459Z\tDEBUG\tlogging/impl_test.go:1\tkept too")
}

func TestSublogger(t *testing.T) {
	logger, observed := NewObservedTestLogger(t)
	sub := logger.Sublogger("align").Sublogger("fit")
	sub.Debugw("residuals", "rms", 0.5)

	entries := observed.All()
	test.That(t, len(entries), test.ShouldEqual, 1)
	test.That(t, entries[0].LoggerName, test.ShouldEqual, "align.fit")
	test.That(t, entries[0].Level, test.ShouldEqual, zapcore.DebugLevel)
	test.That(t, entries[0].ContextMap()["rms"], test.ShouldEqual, 0.5)

	t.Run("levels are independent after creation", func(t *testing.T) {
		notStdout := &bytes.Buffer{}
		parent := NewBlankLogger("framealign")
		parent.AddAppender(NewWriterAppender(notStdout))
		child := parent.Sublogger("align")
		test.That(t, child.GetLevel(), test.ShouldEqual, DEBUG)

		parent.SetLevel(ERROR)
		child.Debugw("estimated alignment")
		assertLogMatches(t, notStdout,
			"2024-05-01T09:12:09.459Z\tDEBUG\tframealign.align\tlogging/impl_test.go:1\testimated alignment")

		child.SetLevel(ERROR)
		parent.SetLevel(DEBUG)
		child.Warnw("dropped")
		test.That(t, notStdout.Len(), test.ShouldEqual, 0)
		parent.Debugw("kept")
		assertLogMatches(t, notStdout, "2024-05-01T09:12:09.459Z\tDEBUG\tframealign\tlogging/impl_test.go:1\tkept")
	})
}

func TestAddAppender(t *testing.T) {
	first, second := &bytes.Buffer{}, &bytes.Buffer{}
	logger := NewBlankLogger("")
	logger.AddAppender(NewWriterAppender(first))
	logger.Infow("only first")
	logger.AddAppender(NewWriterAppender(second))
	logger.Infow("both", "key", "value")

	assertLogMatches(t, first, "2024-05-01T09:12:09.459Z\tINFO\tlogging/impl_test.go:1\tonly first")
	assertLogMatches(t, first, "2024-05-01T09:12:09.459Z\tINFO\tlogging/impl_test.go:1\tboth\t"+`{"key":"value"}`)
	assertLogMatches(t, second, "2024-05-01T09:12:09.459Z\tINFO\tlogging/impl_test.go:1\tboth\t"+`{"key":"value"}`)
	test.That(t, second.Len(), test.ShouldEqual, 0)
	test.That(t, logger.Sync(), test.ShouldBeNil)
}

func TestAsZap(t *testing.T) {
	logger, observed := NewObservedTestLogger(t)
	logger.AsZap().Infow("from zap", "key", "value")
	test.That(t, observed.FilterMessage("from zap").Len(), test.ShouldEqual, 1)

	notStdout := &bytes.Buffer{}
	blank := NewBlankLogger("cli")
	blank.AddAppender(NewWriterAppender(notStdout))
	blank.SetLevel(INFO)
	blank.AsZap().Debug("dropped")
	test.That(t, notStdout.Len(), test.ShouldEqual, 0)
	blank.AsZap().Info("kept")
	assertLogMatches(t, notStdout, "2024-05-01T09:12:09.459Z\tINFO\tcli\tlogging/impl_test.go:1\tkept")
}

func TestGlobal(t *testing.T) {
	logger, observed := NewObservedTestLogger(t)
	prev := Global()
	ReplaceGlobal(logger)
	defer ReplaceGlobal(prev)

	Global().Infow("global")
	test.That(t, observed.FilterMessage("global").Len(), test.ShouldEqual, 1)
}

func TestLevel(t *testing.T) {
	test.That(t, INFO.String(), test.ShouldEqual, "Info")
	test.That(t, DEBUG.AsZap(), test.ShouldEqual, zapcore.DebugLevel)
	test.That(t, ERROR.AsZap(), test.ShouldEqual, zapcore.ErrorLevel)
}
