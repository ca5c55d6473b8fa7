package grid

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/airbusgeo/geoshift/internal/geodesy"
	"go.uber.org/multierr"
)

// TBC layout:
//
//	magic "TBC\x1a"
//	byte order mark 0xFEFF, as a uint16 in the byte order of the file
//	header records: uint16 keyword length, keyword, uint16 value length, value
//	END_OF_HEADER record with an empty value
//	node records in the node layout: values in VALUE_TYPE, then an int16 precision code if PRECISION_CODE
var tbcMagic = []byte("TBC\x1a")

const (
	tbcBOM          = 0xFEFF
	maxHeaderRecord = 4096
)

func tbcHeader(ctx context.Context, r io.ReaderAt, m *Metadata) (int64, error) {
	sr := io.NewSectionReader(r, 0, math.MaxInt64)
	var prefix [6]byte
	if _, err := io.ReadFull(sr, prefix[:]); err != nil {
		return 0, geodesy.NewLoadError(m.Path, "%s: truncated TBC header", m.Path)
	}
	if !bytes.Equal(prefix[:4], tbcMagic) {
		return 0, geodesy.NewLoadError(m.Path, "%s: not a TBC file", m.Path)
	}
	var order binary.ByteOrder
	switch {
	case binary.LittleEndian.Uint16(prefix[4:]) == tbcBOM:
		order, m.Encoding = binary.LittleEndian, EncodingLITTLEENDIAN
	case binary.BigEndian.Uint16(prefix[4:]) == tbcBOM:
		order, m.Encoding = binary.BigEndian, EncodingBIGENDIAN
	default:
		return 0, geodesy.NewLoadError(m.Path, "%s: invalid byte order mark %x", m.Path, prefix[4:])
	}

	readString := func() (string, error) {
		var n uint16
		if err := binary.Read(sr, order, &n); err != nil {
			return "", err
		}
		if n > maxHeaderRecord {
			return "", fmt.Errorf("header record of %d bytes", n)
		}
		b := make([]byte, n)
		if _, err := io.ReadFull(sr, b); err != nil {
			return "", err
		}
		return string(b), nil
	}

	var errs error
	for {
		key, err := readString()
		if err != nil {
			return 0, geodesy.Wrap(geodesy.LoadError, err, "%s: malformed TBC header", m.Path)
		}
		value, err := readString()
		if err != nil {
			return 0, geodesy.Wrap(geodesy.LoadError, err, "%s: malformed TBC header", m.Path)
		}
		if key == endOfHeader {
			break
		}
		errs = multierr.Append(errs, setKeyword(m.Path, m, key, value))
	}
	if errs != nil {
		return 0, errs
	}
	// the byte order mark prevails over the header
	if order == binary.LittleEndian {
		m.Encoding = EncodingLITTLEENDIAN
	} else {
		m.Encoding = EncodingBIGENDIAN
	}
	return sr.Seek(0, io.SeekCurrent)
}

// WriteTBC writes a ready grid in the TBC format, with values of the given type and encoding.
// Values are written east and north positive. Unknown nodes hold the unknown value.
func (g *Grid) WriteTBC(w io.Writer, vt ValueType, enc Encoding) error {
	if g.state != StateREADY {
		return geodesy.NewInvalidArgument("grid %s is not ready (state %s)", g.Path, g.state)
	}
	codec, err := NewCodec(vt, enc)
	if err != nil {
		return err
	}
	precCodec, _ := NewCodec(ValueTypeINT16, enc)
	order := enc.ByteOrder()

	m := g.Metadata
	m.Format = FormatTBC
	m.ValueType, m.Encoding = vt, enc
	m.Cols, m.Rows = g.cols, g.rows
	m.StoredValues = 0
	m.LatFirst, m.WestPositive = false, false

	bw := bufio.NewWriter(w)
	bw.Write(tbcMagic)
	var u16 [2]byte
	writeString := func(s string) {
		order.PutUint16(u16[:], uint16(len(s)))
		bw.Write(u16[:])
		bw.WriteString(s)
	}
	order.PutUint16(u16[:], tbcBOM)
	bw.Write(u16[:])
	for _, k := range headerKeywords {
		writeString(k.name)
		writeString(k.get(&m))
	}
	writeString(endOfHeader)
	writeString("")

	n := g.cols * g.rows
	values := make([]float64, m.ValuesPerNode)
	rec := make([]byte, 0, m.ValuesPerNode*codec.Size()+2)
	for i := 0; i < n; i++ {
		col, row := m.Layout.NodeCoord(g.cols, g.rows, i)
		node, err := g.Node(col, row)
		if err != nil {
			return err
		}
		for j := range values {
			values[j] = node.Values[j]
			if node.Unknown {
				values[j] = m.UnknownValue
			}
		}
		rec = codec.AppendValues(rec[:0], values...)
		if m.PrecisionCode {
			rec = precCodec.AppendValues(rec, float64(node.Precision))
		}
		if _, err := bw.Write(rec); err != nil {
			return fmt.Errorf("WriteTBC: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteTBC: %w", err)
	}
	return nil
}

// SaveTBC writes the grid in the TBC format to the uri, through the storage of the grid
func (g *Grid) SaveTBC(ctx context.Context, uri string, vt ValueType, enc Encoding) error {
	var buf bytes.Buffer
	if err := g.WriteTBC(&buf, vt, enc); err != nil {
		return err
	}
	if err := g.opts.strategy.Upload(ctx, uri, buf.Bytes()); err != nil {
		return fmt.Errorf("SaveTBC[%s]: %w", uri, err)
	}
	return nil
}
