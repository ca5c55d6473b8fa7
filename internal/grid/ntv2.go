package grid

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/airbusgeo/geoshift/internal/geodesy"
	"github.com/airbusgeo/geoshift/internal/log"
	"go.uber.org/zap"
)

type ntv2Kind int

const (
	ntv2Int ntv2Kind = iota
	ntv2Float
	ntv2String
)

var ntv2Keys = map[string]ntv2Kind{
	"NUM_OREC": ntv2Int,
	"NUM_SREC": ntv2Int,
	"NUM_FILE": ntv2Int,
	"GS_TYPE":  ntv2String,
	"VERSION":  ntv2String,
	"SYSTEM_F": ntv2String,
	"SYSTEM_T": ntv2String,
	"MAJOR_F":  ntv2Float,
	"MINOR_F":  ntv2Float,
	"MAJOR_T":  ntv2Float,
	"MINOR_T":  ntv2Float,
	"SUB_NAME": ntv2String,
	"PARENT":   ntv2String,
	"CREATED":  ntv2String,
	"UPDATED":  ntv2String,
	"S_LAT":    ntv2Float,
	"N_LAT":    ntv2Float,
	"E_LONG":   ntv2Float,
	"W_LONG":   ntv2Float,
	"LAT_INC":  ntv2Float,
	"LONG_INC": ntv2Float,
	"GS_COUNT": ntv2Int,
}

// ntv2Header holds the overview and the first sub-file header.
// Bounds and increments are in GS_TYPE units, longitudes positive westward.
type ntv2Header struct {
	numOrec, numSrec, numFile int
	gsType                    string
	systemF, systemT          string
	subName, parent           string
	sLat, nLat, eLong, wLong  float64
	latInc, lonInc            float64
	count                     int
}

func newNTv2Header() ntv2Header {
	return ntv2Header{numOrec: 11, numSrec: 11, numFile: 1, gsType: "SECONDS"}
}

func (h *ntv2Header) set(key string, s string, v float64) {
	switch key {
	case "NUM_OREC":
		h.numOrec = int(v)
	case "NUM_SREC":
		h.numSrec = int(v)
	case "NUM_FILE":
		h.numFile = int(v)
	case "GS_TYPE":
		h.gsType = s
	case "SYSTEM_F":
		h.systemF = s
	case "SYSTEM_T":
		h.systemT = s
	case "SUB_NAME":
		h.subName = s
	case "PARENT":
		h.parent = s
	case "S_LAT":
		h.sLat = v
	case "N_LAT":
		h.nLat = v
	case "E_LONG":
		h.eLong = v
	case "W_LONG":
		h.wLong = v
	case "LAT_INC":
		h.latInc = v
	case "LONG_INC":
		h.lonInc = v
	case "GS_COUNT":
		h.count = int(v)
	}
}

func (h *ntv2Header) records() int {
	return h.numOrec + h.numSrec
}

func ntv2Unit(gsType string) (geodesy.Unit, bool) {
	switch strings.ToUpper(gsType) {
	case "SECONDS":
		return geodesy.UnitSECOND, true
	case "MINUTES":
		return geodesy.UnitMINUTE, true
	case "DEGREES":
		return geodesy.UnitDEGREE, true
	}
	return geodesy.UnitUNDEFINED, false
}

// metadata fills the bounds, increments and unit of the first sub-file
func (h *ntv2Header) metadata(ctx context.Context, path string, m *Metadata) error {
	unit, ok := ntv2Unit(h.gsType)
	if !ok {
		return geodesy.NewHeaderError(path, "GS_TYPE", "%s: unknown GS_TYPE %q", path, h.gsType)
	}
	deg := func(v float64) float64 {
		d, _ := geodesy.UnitConvert(v, unit, geodesy.UnitDEGREE)
		return d
	}
	m.ValueUnit = unit
	m.South, m.North = deg(h.sLat), deg(h.nLat)
	m.West, m.East = -deg(h.wLong), -deg(h.eLong)
	m.StepLat, m.StepLon = deg(h.latInc), deg(h.lonInc)
	if h.systemF != "" || h.systemT != "" {
		m.Description = strings.TrimSpace(h.systemF) + " -> " + strings.TrimSpace(h.systemT)
	}
	if h.subName != "" {
		m.Name = h.subName
	}
	if cols, rows, err := m.Size(); err == nil && cols*rows != h.count {
		return geodesy.NewHeaderError(path, "GS_COUNT", "%s: GS_COUNT %d does not match the %dx%d nodes of the sub-file", path, h.count, cols, rows)
	}
	if h.numFile > 1 {
		log.Logger(ctx).Warn("only the first NTv2 sub-file is used", zap.Int("sub_files", h.numFile), zap.String("sub_name", h.subName))
	}
	return nil
}

const ntv2RecordSize = 16

func ntv2Key(b []byte) string {
	return strings.TrimRight(string(b[:8]), " \x00")
}

// ntv2BinaryHeader reads the 16 bytes records of the overview and of the first sub-file.
// The byte order is detected from NUM_OREC.
func ntv2BinaryHeader(ctx context.Context, r io.ReaderAt, m *Metadata) (int64, error) {
	var rec [ntv2RecordSize]byte
	if _, err := r.ReadAt(rec[:], 0); err != nil {
		return 0, geodesy.NewLoadError(m.Path, "%s: truncated NTv2 header", m.Path)
	}
	if ntv2Key(rec[:]) != "NUM_OREC" {
		return 0, geodesy.NewLoadError(m.Path, "%s: not a NTv2 file", m.Path)
	}
	var order binary.ByteOrder
	switch {
	case binary.LittleEndian.Uint32(rec[8:]) == 11:
		order, m.Encoding = binary.LittleEndian, EncodingLITTLEENDIAN
	case binary.BigEndian.Uint32(rec[8:]) == 11:
		order, m.Encoding = binary.BigEndian, EncodingBIGENDIAN
	default:
		return 0, geodesy.NewHeaderError(m.Path, "NUM_OREC", "%s: cannot detect the byte order from NUM_OREC", m.Path)
	}

	h := newNTv2Header()
	for i := 0; i < h.records(); i++ {
		if _, err := r.ReadAt(rec[:], int64(i*ntv2RecordSize)); err != nil {
			return 0, geodesy.NewLoadError(m.Path, "%s: truncated NTv2 header", m.Path)
		}
		key := ntv2Key(rec[:])
		kind, ok := ntv2Keys[key]
		if !ok {
			return 0, geodesy.NewHeaderError(m.Path, key, "")
		}
		switch kind {
		case ntv2Int:
			h.set(key, "", float64(int32(order.Uint32(rec[8:]))))
		case ntv2Float:
			h.set(key, "", math.Float64frombits(order.Uint64(rec[8:])))
		case ntv2String:
			h.set(key, strings.TrimRight(string(bytes.TrimRight(rec[8:], "\x00")), " "), 0)
		}
	}
	if err := h.metadata(ctx, m.Path, m); err != nil {
		return 0, err
	}
	return int64(h.records() * ntv2RecordSize), nil
}

// ntv2ASCIIHeader reads the "KEY value" records of the overview and of the first sub-file
func ntv2ASCIIHeader(ctx context.Context, r *lineReader, m *Metadata) error {
	h := newNTv2Header()
	for i := 0; i < h.records(); i++ {
		line, err := r.nextLine()
		if err == io.EOF {
			return geodesy.NewLoadError(r.path, "%s: truncated NTv2 header", r.path)
		}
		if err != nil {
			return err
		}
		key, value := keyValue(line)
		key = strings.ToUpper(key)
		kind, ok := ntv2Keys[key]
		if !ok {
			return geodesy.NewHeaderError(r.path, key, "")
		}
		if kind == ntv2String {
			h.set(key, value, 0)
			continue
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return geodesy.NewHeaderError(r.path, key, "%s: invalid value %q for %s", r.path, value, key)
		}
		h.set(key, "", v)
	}
	return h.metadata(ctx, r.path, m)
}

var binaryFormats = map[Format]func(ctx context.Context, r io.ReaderAt, m *Metadata) (int64, error){
	FormatTBC:        tbcHeader,
	FormatNTV2BINARY: ntv2BinaryHeader,
	FormatGTXBINARY:  gtxBinaryHeader,
}
