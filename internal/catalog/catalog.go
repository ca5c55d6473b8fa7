package catalog

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/airbusgeo/geoshift/interface/storage"
	"github.com/airbusgeo/geoshift/interface/storage/filesystem"
	"github.com/airbusgeo/geoshift/internal/geodesy"
	"github.com/airbusgeo/geoshift/internal/log"
	"github.com/airbusgeo/geoshift/internal/projection"
	"github.com/airbusgeo/geoshift/internal/transfo"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Catalog of the reference entities. Entities reference each other by index in their arena.
// A catalog is read-only once loaded.
type Catalog struct {
	Ellipsoids      []geodesy.Ellipsoid
	Meridians       []geodesy.Meridian
	Systems         []geodesy.ReferenceSystem
	Frames          []geodesy.ReferenceFrame
	Conversions     []*projection.Conversion
	CRSs            []geodesy.CRS
	Transformations []*transfo.Transformation

	crs      map[string]int
	frames   map[string]int
	transfos map[[2]string][]int
}

type options struct {
	baseDir string
}

// Option of Load
type Option func(o *options)

// WithBaseDir resolves the relative grid paths against dir
func WithBaseDir(dir string) Option {
	return func(o *options) {
		o.baseDir = dir
	}
}

// Load decodes a YAML catalog and links its entities. Every unresolved or duplicate id is reported.
func Load(ctx context.Context, data []byte, opts ...Option) (*Catalog, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, geodesy.Wrap(geodesy.LoadError, err, "cannot decode catalog")
	}
	c, err := complete(&doc, o)
	if err != nil {
		return nil, err
	}
	log.Logger(ctx).Info("catalog loaded",
		zap.Int("ellipsoids", len(c.Ellipsoids)),
		zap.Int("meridians", len(c.Meridians)),
		zap.Int("frames", len(c.Frames)),
		zap.Int("conversions", len(c.Conversions)),
		zap.Int("crs", len(c.CRSs)),
		zap.Int("transformations", len(c.Transformations)))
	return c, nil
}

// LoadFile loads the catalog at uri from the storage (local filesystem if nil).
// Relative grid paths are resolved against the directory of the catalog.
func LoadFile(ctx context.Context, uri string, strategy storage.Strategy) (*Catalog, error) {
	if strategy == nil {
		var err error
		if strategy, err = filesystem.NewFileSystemStrategy(ctx); err != nil {
			return nil, err
		}
	}
	data, err := strategy.Download(ctx, uri)
	if err != nil {
		return nil, geodesy.Wrap(geodesy.LoadError, err, "cannot read catalog %s", uri)
	}
	c, err := Load(log.With(ctx, "catalog", uri), data, WithBaseDir(filepath.Dir(strings.TrimPrefix(uri, "file://"))))
	if err != nil {
		return nil, fmt.Errorf("LoadFile[%s]: %w", uri, err)
	}
	return c, nil
}

// CRS returns the CRS of the id
func (c *Catalog) CRS(id string) (*geodesy.CRS, error) {
	i, ok := c.crs[id]
	if !ok {
		return nil, geodesy.NewInvalidArgument("unknown crs %q", id)
	}
	return &c.CRSs[i], nil
}

// Frame returns the i-th frame
func (c *Catalog) Frame(i int) *geodesy.ReferenceFrame {
	return &c.Frames[i]
}

// FrameByID returns the index of the frame of the id
func (c *Catalog) FrameByID(id string) (int, bool) {
	i, ok := c.frames[id]
	return i, ok
}

// FrameByKey returns the index of a frame registered under the transformation key,
// the frame of the same id first
func (c *Catalog) FrameByKey(key string) (int, bool) {
	if i, ok := c.frames[key]; ok && c.Frames[i].TransformationKey() == key {
		return i, true
	}
	for i := range c.Frames {
		if c.Frames[i].TransformationKey() == key {
			return i, true
		}
	}
	return geodesy.NoIndex, false
}

// Ellipsoid returns the ellipsoid of a geodetic frame
func (c *Catalog) Ellipsoid(frame int) geodesy.Ellipsoid {
	return c.Ellipsoids[c.Frames[frame].Ellipsoid]
}

// Greenwich returns the longitude (radians) of the prime meridian of a frame
func (c *Catalog) Greenwich(frame int) float64 {
	if m := c.Frames[frame].Meridian; m != geodesy.NoIndex {
		return c.Meridians[m].Greenwich
	}
	return 0
}

// Conversion returns the i-th conversion, initialized
func (c *Catalog) Conversion(i int) *projection.Conversion {
	return c.Conversions[i]
}

// Between returns the indices of the transformations from srcKey to tgtKey
func (c *Catalog) Between(srcKey, tgtKey string) []int {
	return c.transfos[[2]string{srcKey, tgtKey}]
}

// Transformation returns the i-th transformation
func (c *Catalog) Transformation(i int) *transfo.Transformation {
	return c.Transformations[i]
}

// Neighbors returns the sorted transformation keys linked to key by a transformation of the kind, in either direction
func (c *Catalog) Neighbors(key string, kind geodesy.FrameKind) []string {
	set := map[string]struct{}{}
	for _, t := range c.Transformations {
		if t.Kind != kind {
			continue
		}
		switch key {
		case t.SourceKey:
			set[t.TargetKey] = struct{}{}
		case t.TargetKey:
			set[t.SourceKey] = struct{}{}
		}
	}
	delete(set, key)
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
