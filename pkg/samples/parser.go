package samples

import (
	"bytes"
	"strconv"

	"github.com/pkg/errors"
)

// labelAllSamples is the group every non-empty input line contributes to;
// it is also the label assigned to bare unlabelled values.
const labelAllSamples = "all samples"

// ParserCreate is a function that creates a new Parser (called once per
// worker in Run)
type ParserCreate func() Parser

// Parser turns one raw input line into zero or more Samples.
type Parser interface {
	// Init initializes any state for the Parser, possibly based on its
	// worker number / ID
	Init(workerNum int)

	// ParseLine parses a single raw line. A nil slice with a nil error
	// means the line carries no samples (blank line or comment).
	ParseLine(line []byte) ([]*Sample, error)
}

// NewLineParser returns the default Parser, which reads one sample per line
// in the form "label,value", or a bare "value" assigned to the default label.
func NewLineParser() Parser {
	return &lineParser{}
}

type lineParser struct{}

func (p *lineParser) Init(workerNum int) {}

func (p *lineParser) ParseLine(line []byte) ([]*Sample, error) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 || line[0] == '#' {
		return nil, nil
	}

	label := []byte(labelAllSamples)
	raw := line
	if i := bytes.IndexByte(line, ','); i >= 0 {
		label = bytes.TrimSpace(line[:i])
		raw = bytes.TrimSpace(line[i+1:])
	}

	value, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid sample line %q", line)
	}

	return []*Sample{GetSample().Init(label, value)}, nil
}
