package dataset

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

const (
	keyTitle  = "Title="
	keyXLabel = "X-Axis Label="
	keyYLabel = "Y-Axis Label="
	keyXMin   = "X-Min="
	keyXMax   = "X-Max="
	keyYMin   = "Y-Min="
	keyYMax   = "Y-Max="

	headerLineCount = 7
)

// CheckEncodable reports ErrLabelBreak when a label holds '\n' or '\r'. Labels
// are single header lines in .jjf text, so such a DataSet would not read back.
func CheckEncodable(ds DataSet) error {
	for _, label := range []struct {
		key   string
		value string
	}{
		{keyTitle, ds.GetTitle()},
		{keyXLabel, ds.GetXLabel()},
		{keyYLabel, ds.GetYLabel()},
	} {
		if strings.ContainsAny(label.value, "\r\n") {
			return fmt.Errorf("%w: %s%q", ErrLabelBreak, label.key, label.value)
		}
	}

	return nil
}

// Encode renders ds as .jjf text: seven header lines, then one "x,y" line per
// point in ascending X order. Callers that persist the text check it with
// CheckEncodable first.
func Encode(ds DataSet) []byte {
	var buf bytes.Buffer

	bounds := ds.GetBounds()

	buf.WriteString(keyTitle + ds.GetTitle() + "\n")
	buf.WriteString(keyXLabel + ds.GetXLabel() + "\n")
	buf.WriteString(keyYLabel + ds.GetYLabel() + "\n")
	buf.WriteString(keyXMin + formatFloat(bounds.XMin) + "\n")
	buf.WriteString(keyXMax + formatFloat(bounds.XMax) + "\n")
	buf.WriteString(keyYMin + formatFloat(bounds.YMin) + "\n")
	buf.WriteString(keyYMax + formatFloat(bounds.YMax) + "\n")

	for _, p := range ds.GetDataAsArray() {
		buf.WriteString(formatFloat(p[0]) + "," + formatFloat(p[1]) + "\n")
	}

	return buf.Bytes()
}

// Decode parses .jjf text. Header bounds that break min <= max fail the whole
// decode with ErrInvalidRange before any data line is looked at. Data lines that
// the DataSet refuses (out of range, duplicates) are dropped without error so
// partially invalid files still load; unparsable lines fail with ErrMalformed.
func Decode(d []byte) (ds DataSet, err error) {
	scanner := bufio.NewScanner(bytes.NewReader(d))
	scanner.Buffer(make([]byte, 0, 64*1024), len(d)+1)

	var header [headerLineCount]string

	keys := [headerLineCount]string{keyTitle, keyXLabel, keyYLabel, keyXMin, keyXMax, keyYMin, keyYMax}

	for idx, key := range keys {
		if !scanner.Scan() {
			err = fmt.Errorf("%w: missing %q header line", ErrMalformed, strings.TrimSuffix(key, "="))

			return
		}

		line := strings.TrimSuffix(scanner.Text(), "\r")
		if !strings.HasPrefix(line, key) {
			err = fmt.Errorf("%w: line %d: expected %q", ErrMalformed, idx+1, key)

			return
		}

		header[idx] = line[len(key):]
	}

	var bounds Bounds

	for idx, v := range []*float64{&bounds.XMin, &bounds.XMax, &bounds.YMin, &bounds.YMax} {
		*v, err = parseFloat(header[3+idx])
		if err != nil {
			err = fmt.Errorf("%w: line %d: %v", ErrMalformed, 4+idx, err)

			return
		}
	}

	ds, err = NewDataSetEx(header[0], header[1], header[2], bounds)
	if err != nil {
		return
	}

	for lineNo := headerLineCount + 1; scanner.Scan(); lineNo++ {
		var x, y float64

		x, y, err = parseDataLine(strings.TrimSuffix(scanner.Text(), "\r"))
		if err != nil {
			ds = nil
			err = fmt.Errorf("%w: line %d: %v", ErrMalformed, lineNo, err)

			return
		}

		_ = ds.Add(&x, &y)
	}

	if err = scanner.Err(); err != nil {
		ds = nil
		err = fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return
}

func parseDataLine(line string) (x, y float64, err error) {
	ps := strings.Split(line, ",")
	if len(ps) != 2 {
		err = fmt.Errorf("want 2 comma separated values, got %q", line)

		return
	}

	x, err = parseFloat(ps[0])
	if err != nil {
		return
	}

	y, err = parseFloat(ps[1])

	return
}

func parseFloat(s string) (float64, error) {
	return cast.ToFloat64E(strings.TrimSpace(s))
}
