package grid

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"sync"

	"github.com/airbusgeo/geoshift/interface/storage"
	"github.com/airbusgeo/geoshift/interface/storage/filesystem"
	"github.com/airbusgeo/geoshift/internal/geodesy"
	"github.com/airbusgeo/geoshift/internal/log"
	"github.com/airbusgeo/geoshift/internal/utils/affine"
	"github.com/airbusgeo/godal"
	"go.uber.org/zap"
)

// ProgressFunc is called while the nodes are loaded, with the number of nodes read so far and the total
type ProgressFunc func(done, total int)

type options struct {
	format   Format
	strategy storage.Strategy
	progress ProgressFunc
	// forced on top of the header
	authoritative, unknownAsZero bool
}

// Option of Open and Load
type Option func(o *options)

// WithFormat forces the format instead of detecting it from the file
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithStorage sets the storage the file is fetched from (default: local filesystem)
func WithStorage(s storage.Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithProgress reports the progress of the loading of the nodes
func WithProgress(p ProgressFunc) Option {
	return func(o *options) {
		o.progress = p
	}
}

// WithOverrides forces the authoritative and unknown-as-zero flags of the header (eg. as declared in a catalog).
// A false flag keeps the value of the header.
func WithOverrides(authoritative, unknownAsZero bool) Option {
	return func(o *options) {
		o.authoritative = o.authoritative || authoritative
		o.unknownAsZero = o.unknownAsZero || unknownAsZero
	}
}

// Node of a grid, values in the value unit of the grid
type Node struct {
	Values    [3]float64
	Precision int
	Unknown   bool
}

// Grid of displacements or heights.
// A grid in STREAMED mode reads its nodes from the file held open, under a mutex.
type Grid struct {
	Metadata
	state State
	mode  LoadMode
	opts  options

	cols, rows int
	nodes      *affine.Affine
	// the grid goes round the earth, with period columns per turn
	global bool
	period int

	// ARRAY: record values of each node, in file order
	values    []float64
	precision []int32
	preloaded bool

	// STREAMED
	mu         sync.Mutex
	src        storage.ReaderAtCloser
	dataOffset int64
	codec      Codec
	precCodec  Codec
	recordSize int

	text *lineReader
	ds   *godal.Dataset

	// users of a grid shared by a Cache
	refs struct {
		sync.Mutex
		n       int
		evicted bool
	}
}

// Open detects the format of the file and parses its header
func Open(ctx context.Context, path string, opts ...Option) (*Grid, error) {
	g := &Grid{}
	for _, o := range opts {
		o(&g.opts)
	}
	ctx = log.WithGrid(ctx, path)
	if g.opts.strategy == nil {
		var err error
		if g.opts.strategy, err = filesystem.NewFileSystemStrategy(ctx); err != nil {
			return nil, err
		}
	}
	format := g.opts.format
	if format == FormatUNDEFINED {
		var err error
		if format, err = DetectFormat(ctx, path, g.opts.strategy); err != nil {
			return nil, err
		}
	}
	g.Metadata = defaults(format)
	g.Path = path
	g.Name = filepath.Base(path)

	if err := g.parseHeader(ctx); err != nil {
		g.release()
		return nil, fmt.Errorf("Open[%s]: %w", path, err)
	}
	g.Authoritative = g.Authoritative || g.opts.authoritative
	g.UnknownAsZero = g.UnknownAsZero || g.opts.unknownAsZero
	g.state = StateHEADERPARSED
	log.Logger(ctx).Debug("grid header parsed", zap.Stringer("format", format))
	return g, nil
}

func (g *Grid) parseHeader(ctx context.Context) error {
	if text, ok := textFormats[g.Format]; ok {
		data, err := g.opts.strategy.Download(ctx, g.Path)
		if err != nil {
			return geodesy.Wrap(geodesy.LoadError, err, "cannot read %s", g.Path)
		}
		g.text = newLineReader(g.Path, data)
		if err := text.header(ctx, g.text, &g.Metadata); err != nil {
			return err
		}
		if text.preload != nil {
			if g.values, g.precision, err = text.preload(g.text, &g.Metadata); err != nil {
				return err
			}
			g.preloaded, g.text = true, nil
		}
		return nil
	}
	if header, ok := binaryFormats[g.Format]; ok {
		src, err := g.opts.strategy.OpenReaderAt(ctx, g.Path)
		if err != nil {
			return geodesy.Wrap(geodesy.LoadError, err, "cannot open %s", g.Path)
		}
		g.src = src
		g.dataOffset, err = header(ctx, src, &g.Metadata)
		return err
	}
	if g.Format == FormatGDAL {
		return g.openGDAL()
	}
	return geodesy.NewLoadError(g.Path, "unsupported grid format %s", g.Format)
}

// State returns the state of the grid
func (g *Grid) State() State {
	return g.state
}

// Mode returns the load mode of the grid
func (g *Grid) Mode() LoadMode {
	return g.mode
}

// Dims returns the number of columns and rows of a loaded grid
func (g *Grid) Dims() (int, int) {
	return g.cols, g.rows
}

// Validate checks the metadata, reporting every invalid field. The grid becomes INVALID on failure.
func (g *Grid) Validate() error {
	if g.state != StateHEADERPARSED {
		return geodesy.NewInvalidArgument("grid %s: cannot validate in state %s", g.Path, g.state)
	}
	if err := g.Metadata.Validate(); err != nil {
		g.state = StateINVALID
		g.release()
		return geodesy.Wrap(geodesy.ValidationError, err, "invalid grid %s", g.Path)
	}
	g.state = StateMETADATAVALIDATED
	return nil
}

// Load reads the nodes according to the mode. Text formats cannot be streamed and are loaded in ARRAY mode.
func (g *Grid) Load(ctx context.Context, mode LoadMode) error {
	if g.state != StateMETADATAVALIDATED {
		return geodesy.NewInvalidArgument("grid %s: cannot load in state %s", g.Path, g.state)
	}
	ctx = log.WithGrid(ctx, g.Path)
	var err error
	if g.cols, g.rows, err = g.Size(); err != nil {
		return geodesy.Wrap(geodesy.ValidationError, err, "grid %s", g.Path)
	}
	switch mode {
	case LoadModeHEADERONLY:
		g.mode = mode
		g.release()
		return nil
	case LoadModeSTREAMED:
		if !g.Format.IsBinary() {
			log.Logger(ctx).Debug("format cannot be streamed, loading in memory", zap.Stringer("format", g.Format))
			mode = LoadModeARRAY
		}
	case LoadModeARRAY:
	default:
		return geodesy.NewInvalidArgument("grid %s: invalid load mode %s", g.Path, mode)
	}
	g.mode = mode
	g.nodes = affine.NodeAffine(g.West, g.South, g.StepLon, g.StepLat)

	switch {
	case g.preloaded:
	case g.text != nil:
		g.values, g.precision, err = readNodes(g.text, &g.Metadata, g.cols*g.rows, g.opts.progress)
		g.text = nil
	case g.ds != nil:
		err = g.loadGDAL()
	case g.src != nil:
		err = g.loadBinary()
	default:
		err = geodesy.NewLoadError(g.Path, "no node source")
	}
	if err != nil {
		g.release()
		return fmt.Errorf("Load[%s]: %w", g.Path, err)
	}
	g.state = StateLOADED
	g.prepare()
	g.state = StateREADY
	log.Logger(ctx).Debug("grid loaded", zap.Stringer("mode", g.mode), zap.Int("cols", g.cols), zap.Int("rows", g.rows))
	return nil
}

// prepare computes the derived fields of a loaded grid
func (g *Grid) prepare() {
	g.global = g.East-g.West+g.StepLon >= 360-1e-9
	if g.global {
		g.period = int(math.Round(360 / g.StepLon))
	}
}

func (g *Grid) loadBinary() error {
	var err error
	if g.codec, err = NewCodec(g.ValueType, g.Encoding); err != nil {
		return err
	}
	if g.precCodec, err = NewCodec(ValueTypeINT16, g.Encoding); err != nil {
		return err
	}
	g.recordSize = g.recordValues() * g.codec.Size()
	if g.PrecisionCode {
		g.recordSize += 2
	}
	if g.mode == LoadModeSTREAMED {
		// check the last record can be read
		if _, _, err := g.readRecord(g.cols*g.rows-1, make([]float64, g.recordValues())); err != nil {
			return err
		}
		return nil
	}

	n := g.cols * g.rows
	rv := g.recordValues()
	g.values = make([]float64, n*rv)
	if g.PrecisionCode {
		g.precision = make([]int32, n)
	}
	// read by chunks of rows to report the progress
	chunk := g.cols
	buf := make([]byte, chunk*g.recordSize)
	for first := 0; first < n; first += chunk {
		count := chunk
		if first+count > n {
			count = n - first
		}
		b := buf[:count*g.recordSize]
		if _, err := g.src.ReadAt(b, g.dataOffset+int64(first*g.recordSize)); err != nil {
			return g.readError(err)
		}
		for i := 0; i < count; i++ {
			rec := b[i*g.recordSize:]
			g.codec.ReadValues(rec, g.values[(first+i)*rv:(first+i+1)*rv])
			if g.PrecisionCode {
				g.precision[first+i] = g.decodePrecision(rec[rv*g.codec.Size():])
			}
		}
		if g.opts.progress != nil {
			g.opts.progress(first+count, n)
		}
	}
	g.closeSource()
	return nil
}

func (g *Grid) readError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return geodesy.NewLoadError(g.Path, "file %s is truncated: %d nodes expected", g.Path, g.cols*g.rows)
	}
	return geodesy.Wrap(geodesy.LoadError, err, "cannot read %s", g.Path)
}

func (g *Grid) decodePrecision(b []byte) int32 {
	return int32(g.precCodec.Read(b))
}

// readRecord reads the record of the node at the index of the file
func (g *Grid) readRecord(index int, dst []float64) (int, bool, error) {
	rv := g.recordValues()
	if g.mode == LoadModeSTREAMED {
		b := make([]byte, g.recordSize)
		g.mu.Lock()
		if g.src == nil {
			g.mu.Unlock()
			return 0, false, geodesy.NewInvalidArgument("grid %s is closed", g.Path)
		}
		_, err := g.src.ReadAt(b, g.dataOffset+int64(index*g.recordSize))
		g.mu.Unlock()
		if err != nil {
			return 0, false, g.readError(err)
		}
		g.codec.ReadValues(b, dst[:rv])
		if g.PrecisionCode {
			return int(g.decodePrecision(b[rv*g.codec.Size():])), true, nil
		}
		return 0, false, nil
	}
	copy(dst, g.values[index*rv:(index+1)*rv])
	if g.precision != nil {
		return int(g.precision[index]), true, nil
	}
	return 0, false, nil
}

func (g *Grid) isUnknown(v float64) bool {
	return g.HasUnknownValue && math.Abs(v-g.UnknownValue) <= 1e-6*math.Max(1, math.Abs(g.UnknownValue))
}

// Node returns the node (col, row), col from west to east and row from south to north.
// Values are east and north positive, in the value unit of the grid.
func (g *Grid) Node(col, row int) (Node, error) {
	if g.state != StateREADY {
		return Node{}, geodesy.NewInvalidArgument("grid %s is not ready (state %s)", g.Path, g.state)
	}
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return Node{}, geodesy.NewInvalidArgument("node (%d, %d) out of grid %s (%dx%d)", col, row, g.Path, g.cols, g.rows)
	}
	var raw [maxStoredValues]float64
	rec := raw[:g.recordValues()]
	prec, _, err := g.readRecord(g.Layout.NodePosition(g.cols, g.rows, col, row), rec)
	if err != nil {
		return Node{}, err
	}
	n := Node{Precision: prec}
	for i := 0; i < g.ValuesPerNode; i++ {
		if g.isUnknown(rec[i]) {
			n.Unknown = true
		}
		n.Values[i] = rec[i]
	}
	if g.LatFirst && g.ValuesPerNode >= 2 {
		n.Values[0], n.Values[1] = n.Values[1], n.Values[0]
	}
	if g.WestPositive {
		n.Values[0] = -n.Values[0]
	}
	if n.Unknown {
		n.Values = [3]float64{}
	}
	return n, nil
}

// knownNode returns the node, or an UnknownValue error if it holds the unknown value and the grid does not replace it by zero
func (g *Grid) knownNode(col, row int) (Node, error) {
	n, err := g.Node(col, row)
	if err != nil {
		return n, err
	}
	if n.Unknown && !g.UnknownAsZero {
		return n, geodesy.NewUnknownValue(g.Path, col, row)
	}
	return n, nil
}

func (g *Grid) closeSource() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.src != nil {
		g.src.Close()
		g.src = nil
	}
}

// release frees the file and parsing resources
func (g *Grid) release() {
	g.closeSource()
	if g.ds != nil {
		g.ds.Close()
		g.ds = nil
	}
	g.text = nil
}

// Close releases the file held open by a STREAMED grid. The grid cannot be used anymore.
func (g *Grid) Close() error {
	g.release()
	g.values, g.precision = nil, nil
	if g.state == StateREADY || g.state == StateLOADED {
		g.state = StateUNLOADED
	}
	return nil
}

// acquire registers a user of the grid, unless the grid has been evicted from its cache
func (g *Grid) acquire() bool {
	g.refs.Lock()
	defer g.refs.Unlock()
	if g.refs.evicted {
		return false
	}
	g.refs.n++
	return true
}

// evict closes the grid once its last user has released it
func (g *Grid) evict() {
	g.refs.Lock()
	defer g.refs.Unlock()
	g.refs.evicted = true
	if g.refs.n == 0 {
		g.Close()
	}
}

// Release is called by the users of a grid returned by a Cache when they are done with it.
// A grid evicted from the cache is closed by its last user.
func (g *Grid) Release() {
	g.refs.Lock()
	defer g.refs.Unlock()
	if g.refs.n > 0 {
		g.refs.n--
	}
	if g.refs.n == 0 && g.refs.evicted {
		g.Close()
	}
}

// Load opens, validates and loads a grid
func Load(ctx context.Context, path string, mode LoadMode, opts ...Option) (*Grid, error) {
	g, err := Open(ctx, path, opts...)
	if err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := g.Load(ctx, mode); err != nil {
		return nil, err
	}
	return g, nil
}
