package input

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/specialistvlad/clampsum/internal/ctxlog"
	"github.com/specialistvlad/clampsum/internal/validation"
)

// maxLineSize bounds a single input line. A longer line is a read error.
const maxLineSize = 1 << 20

// Read consumes r to the end and returns the validated numbers in order.
// Nothing after the first invalid line is read.
func Read(ctx context.Context, r io.Reader) ([]decimal.Decimal, error) {
	logger := ctxlog.FromContext(ctx)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	scanner.Split(scanLines)

	numbers := make([]decimal.Decimal, 0, validation.MaxInputs)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			logger.Debug("Empty input line.", "position", len(numbers)+1)
			return nil, &validation.Error{Kind: validation.EmptyLine}
		}

		n, err := validation.Input(line)
		if err != nil {
			logger.Debug("Rejected input line.", "position", len(numbers)+1, "line", line)
			return nil, err
		}

		numbers = append(numbers, n)
		if len(numbers) > validation.MaxInputs {
			return nil, &validation.Error{Kind: validation.InputCount}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &validation.Error{Kind: validation.Read, Err: err}
	}

	logger.Debug("Input read.", "count", len(numbers))
	return numbers, nil
}

// scanLines is a bufio.SplitFunc that ends a line at "\n", "\r\n" or a lone
// "\r", and drops the terminator.
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// A "\r" at the end of the buffer may be the first half of "\r\n".
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
