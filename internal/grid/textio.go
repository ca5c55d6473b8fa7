package grid

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/airbusgeo/geoshift/internal/geodesy"
)

const maxLineSize = 64 * 1024 * 1024

// lineReader reads a text grid line by line or token by token, skipping blank and # comment lines
type lineReader struct {
	path   string
	sc     *bufio.Scanner
	line   int
	fields []string // tokens of the current line not consumed yet
}

func newLineReader(path string, data []byte) *lineReader {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &lineReader{path: path, sc: sc}
}

// nextLine returns the next significant line, or io.EOF
func (r *lineReader) nextLine() (string, error) {
	r.fields = nil
	for r.sc.Scan() {
		r.line++
		l := strings.TrimSpace(r.sc.Text())
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		return l, nil
	}
	if err := r.sc.Err(); err != nil {
		return "", geodesy.Wrap(geodesy.LoadError, err, "%s: line %d", r.path, r.line)
	}
	return "", io.EOF
}

// unread pushes back the tokens of a line read by nextLine
func (r *lineReader) unread(line string) {
	r.fields = strings.Fields(line)
}

func (r *lineReader) token() (string, error) {
	for len(r.fields) == 0 {
		l, err := r.nextLine()
		if err != nil {
			return "", err
		}
		r.fields = strings.Fields(l)
	}
	t := r.fields[0]
	r.fields = r.fields[1:]
	return t, nil
}

func (r *lineReader) float() (float64, error) {
	t, err := r.token()
	if err == io.EOF {
		return 0, geodesy.NewLoadError(r.path, "%s: unexpected end of file", r.path)
	}
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, geodesy.NewLoadError(r.path, "%s: line %d: invalid number %q", r.path, r.line, t)
	}
	return v, nil
}

// floats parses a line made of exactly n numbers (at least n if atLeast)
func (r *lineReader) floats(line string, n int, atLeast bool) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) < n || (!atLeast && len(fields) != n) {
		return nil, geodesy.NewLoadError(r.path, "%s: line %d: %d numbers expected, got %d", r.path, r.line, n, len(fields))
	}
	v := make([]float64, len(fields))
	for i, f := range fields {
		var err error
		if v[i], err = strconv.ParseFloat(f, 64); err != nil {
			return nil, geodesy.NewLoadError(r.path, "%s: line %d: invalid number %q", r.path, r.line, f)
		}
	}
	return v, nil
}

// keyValue splits a header line in a keyword and its value
func keyValue(line string) (string, string) {
	i := strings.IndexAny(line, " \t=")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(strings.TrimLeft(line[i:], " \t="))
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// readNodes reads n node records in file order: the record values, then the precision code if any
func readNodes(r *lineReader, m *Metadata, n int, progress ProgressFunc) ([]float64, []int32, error) {
	rv := m.recordValues()
	values := make([]float64, n*rv)
	var precision []int32
	if m.PrecisionCode {
		precision = make([]int32, n)
	}
	step := n / 100
	if step == 0 {
		step = 1
	}
	for i := 0; i < n; i++ {
		for j := 0; j < rv; j++ {
			v, err := r.float()
			if err != nil {
				return nil, nil, err
			}
			values[i*rv+j] = v
		}
		if m.PrecisionCode {
			p, err := r.float()
			if err != nil {
				return nil, nil, err
			}
			precision[i] = int32(p)
		}
		if progress != nil && ((i+1)%step == 0 || i == n-1) {
			progress(i+1, n)
		}
	}
	return values, precision, nil
}

type textFormat struct {
	header func(ctx context.Context, r *lineReader, m *Metadata) error
	// preload reads the nodes with the header, for the formats whose header depends on the nodes
	preload func(r *lineReader, m *Metadata) ([]float64, []int32, error)
}

var textFormats = map[Format]textFormat{
	FormatTAC:       {header: tacHeader},
	FormatNTV2ASCII: {header: ntv2ASCIIHeader},
	FormatGRAVSOFT:  {header: gravsoftHeader},
	FormatEGM:       {header: gravsoftHeader},
	FormatESRI:      {header: esriHeader},
	FormatGTXASCII:  {header: gtxASCIIHeader},
	FormatSURFER:    {header: surferHeader},
	FormatDIS:       {header: disHeader, preload: disNodes},
}
