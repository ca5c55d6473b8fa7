package catalog

import (
	"fmt"
	"path/filepath"

	"github.com/airbusgeo/geoshift/internal/geodesy"
	"github.com/airbusgeo/geoshift/internal/projection"
	"github.com/airbusgeo/geoshift/internal/transfo"
	"github.com/airbusgeo/geoshift/internal/utils/proj"
	"go.uber.org/multierr"
)

// linker resolves the ids of a document into indices, accumulating every error
type linker struct {
	doc  *document
	opts options
	c    *Catalog
	errs error

	ellipsoids  map[string]int
	meridians   map[string]int
	systems     map[string]int
	conversions map[string]*conversionDoc
	// initialized conversions by conversion and ellipsoid ids
	instances map[[2]string]int
}

func (l *linker) fail(err error) {
	l.errs = multierr.Append(l.errs, err)
}

// index registers the id in the map, failing on duplicates and empty ids
func (l *linker) index(m map[string]int, entity, id string, i int) bool {
	if id == "" {
		l.fail(geodesy.NewFieldError("id", "%s #%d has no id", entity, i))
		return false
	}
	if _, ok := m[id]; ok {
		l.fail(geodesy.NewDuplicateID(entity, id))
		return false
	}
	m[id] = i
	return true
}

// ref resolves a mandatory reference
func (l *linker) ref(m map[string]int, entity, id, field, ref string) int {
	i, ok := m[ref]
	if !ok {
		l.fail(geodesy.NewUnknownReference(entity, id, field, ref))
		return geodesy.NoIndex
	}
	return i
}

func unitOr(u, def geodesy.Unit) geodesy.Unit {
	if u == geodesy.UnitUNDEFINED {
		return def
	}
	return u
}

func (l *linker) convert(v float64, from, to geodesy.Unit, entity, id, field string) float64 {
	r, err := geodesy.UnitConvert(v, from, to)
	if err != nil {
		l.fail(geodesy.NewFieldError(field, "%s %s: %v", entity, id, err))
	}
	return r
}

func (l *linker) coverage(d *coverageDoc, entity, id string) proj.Coverage {
	if d == nil {
		return proj.Coverage{}
	}
	var c proj.Coverage
	var err error
	if d.WKT != "" {
		c, err = proj.NewCoverageFromWKT(d.WKT)
	} else {
		c, err = proj.NewCoverage(d.West, d.East, d.South, d.North)
	}
	if err != nil {
		l.fail(geodesy.NewFieldError("coverage", "%s %s: %v", entity, id, err))
	}
	return c
}

// complete links the document into a catalog:
// ids are resolved to indices, ellipsoids derived, conversions initialized once per ellipsoid,
// frame coverages computed from their CRSs and transformations
func complete(doc *document, opts options) (*Catalog, error) {
	l := &linker{
		doc:         doc,
		opts:        opts,
		c:           &Catalog{crs: map[string]int{}, frames: map[string]int{}, transfos: map[[2]string][]int{}},
		ellipsoids:  map[string]int{},
		meridians:   map[string]int{},
		systems:     map[string]int{},
		conversions: map[string]*conversionDoc{},
		instances:   map[[2]string]int{},
	}
	l.linkEllipsoids()
	l.linkMeridians()
	l.linkSystems()
	l.linkFrames()
	l.linkConversions()
	l.linkCRS()
	l.linkTransformations()
	if l.errs != nil {
		return nil, l.errs
	}
	l.frameCoverages()
	return l.c, nil
}

func (l *linker) linkEllipsoids() {
	for i, d := range l.doc.Ellipsoids {
		if !l.index(l.ellipsoids, "ellipsoid", d.ID, len(l.c.Ellipsoids)) {
			continue
		}
		e := geodesy.Ellipsoid{ID: d.ID, Name: d.Name, A: d.A, B: d.B, F: d.F, InvF: d.InvF, E2: d.E2}
		if err := e.Complete(); err != nil {
			l.fail(fmt.Errorf("ellipsoid #%d: %w", i, err))
		}
		l.c.Ellipsoids = append(l.c.Ellipsoids, e)
	}
}

func (l *linker) linkMeridians() {
	for _, d := range l.doc.Meridians {
		if !l.index(l.meridians, "meridian", d.ID, len(l.c.Meridians)) {
			continue
		}
		l.c.Meridians = append(l.c.Meridians, geodesy.Meridian{
			ID:        d.ID,
			Name:      d.Name,
			Greenwich: l.convert(d.Greenwich, unitOr(d.Unit, geodesy.UnitDEGREE), geodesy.UnitRADIAN, "meridian", d.ID, "greenwich"),
		})
	}
}

func (l *linker) linkSystems() {
	for _, d := range l.doc.Systems {
		if !l.index(l.systems, "system", d.ID, len(l.c.Systems)) {
			continue
		}
		l.c.Systems = append(l.c.Systems, geodesy.ReferenceSystem{ID: d.ID, Name: d.Name, Kind: d.Kind})
	}
}

func (l *linker) linkFrames() {
	for _, d := range l.doc.Frames {
		if !l.index(l.c.frames, "frame", d.ID, len(l.c.Frames)) {
			continue
		}
		f := geodesy.ReferenceFrame{
			ID:                    d.ID,
			Name:                  d.Name,
			Kind:                  d.Kind,
			System:                geodesy.NoIndex,
			Ellipsoid:             geodesy.NoIndex,
			Meridian:              geodesy.NoIndex,
			Epoch:                 d.Epoch,
			UsesForTransformation: d.UsesForTransformation,
			Coverage:              l.coverage(d.Coverage, "frame", d.ID),
		}
		if d.System != "" {
			f.System = l.ref(l.systems, "frame", d.ID, "system", d.System)
			if f.System != geodesy.NoIndex && f.Kind == geodesy.FrameKindUNDEFINED {
				f.Kind = l.c.Systems[f.System].Kind
			}
		}
		switch f.Kind {
		case geodesy.FrameKindGEODETIC:
			f.Ellipsoid = l.ref(l.ellipsoids, "frame", d.ID, "ellipsoid", d.Ellipsoid)
			if d.Meridian != "" {
				f.Meridian = l.ref(l.meridians, "frame", d.ID, "meridian", d.Meridian)
			}
		case geodesy.FrameKindVERTICAL:
		default:
			l.fail(geodesy.NewFieldError("kind", "frame %s: undefined kind", d.ID))
		}
		l.c.Frames = append(l.c.Frames, f)
	}
	for _, f := range l.c.Frames {
		if k := f.UsesForTransformation; k != "" {
			if _, ok := l.c.frames[k]; !ok {
				l.fail(geodesy.NewUnknownReference("frame", f.ID, "uses_for_transformation", k))
			}
		}
	}
}

func (l *linker) linkConversions() {
	for i := range l.doc.Conversions {
		d := &l.doc.Conversions[i]
		if d.ID == "" {
			l.fail(geodesy.NewFieldError("id", "conversion #%d has no id", i))
			continue
		}
		if _, ok := l.conversions[d.ID]; ok {
			l.fail(geodesy.NewDuplicateID("conversion", d.ID))
			continue
		}
		l.conversions[d.ID] = d
	}
}

// instance returns the index of the conversion initialized on the ellipsoid
func (l *linker) instance(d *conversionDoc, e geodesy.Ellipsoid) (int, error) {
	key := [2]string{d.ID, e.ID}
	if i, ok := l.instances[key]; ok {
		return i, nil
	}
	var conv *projection.Conversion
	if d.UTMZone != 0 {
		var err error
		if conv, err = projection.NewUTM(d.UTMZone, d.South, e.A, e.E2); err != nil {
			return geodesy.NoIndex, err
		}
		conv.ID = d.ID
	} else {
		u := unitOr(d.Unit, geodesy.UnitDEGREE)
		angle := func(v float64, field string) float64 {
			return l.convert(v, u, geodesy.UnitRADIAN, "conversion", d.ID, field)
		}
		conv = projection.New(d.ID, d.Method, projection.Parameters{
			A:       e.A,
			E2:      e.E2,
			Lambda0: angle(d.Lambda0, "lambda0"),
			Phi0:    angle(d.Phi0, "phi0"),
			Phi1:    angle(d.Phi1, "phi1"),
			Phi2:    angle(d.Phi2, "phi2"),
			K0:      d.K0,
			X0:      d.X0,
			Y0:      d.Y0,
		})
		if err := conv.InitParam(); err != nil {
			return geodesy.NoIndex, err
		}
	}
	conv.Name = d.Name
	l.c.Conversions = append(l.c.Conversions, conv)
	l.instances[key] = len(l.c.Conversions) - 1
	return len(l.c.Conversions) - 1, nil
}

func (l *linker) linkCRS() {
	for _, d := range l.doc.CRS {
		if !l.index(l.c.crs, "crs", d.ID, len(l.c.CRSs)) {
			continue
		}
		c := geodesy.CRS{
			ID:          d.ID,
			Name:        d.Name,
			Type:        d.Type,
			Frame:       l.ref(l.c.frames, "crs", d.ID, "frame", d.Frame),
			Conversion:  geodesy.NoIndex,
			AngularUnit: unitOr(d.AngularUnit, geodesy.UnitDEGREE),
			LinearUnit:  unitOr(d.LinearUnit, geodesy.UnitMETER),
			Coverage:    l.coverage(d.Coverage, "crs", d.ID),
		}
		if !c.AngularUnit.IsAngular() {
			l.fail(geodesy.NewFieldError("angular_unit", "crs %s: %s is not an angular unit", d.ID, c.AngularUnit))
		}
		if !c.LinearUnit.IsLinear() {
			l.fail(geodesy.NewFieldError("linear_unit", "crs %s: %s is not a linear unit", d.ID, c.LinearUnit))
		}
		if c.Type == geodesy.CRSTypeUNDEFINED {
			l.fail(geodesy.NewFieldError("type", "crs %s: undefined type", d.ID))
		}
		if c.Frame != geodesy.NoIndex {
			f := &l.c.Frames[c.Frame]
			if c.IsVertical() != (f.Kind == geodesy.FrameKindVERTICAL) {
				l.fail(geodesy.NewFieldError("frame", "crs %s of type %s cannot use the %s frame %s", d.ID, c.Type, f.Kind, f.ID))
			} else if c.Type == geodesy.CRSTypePROJECTED {
				l.linkProjection(&c, d, f)
			}
		}
		l.c.CRSs = append(l.c.CRSs, c)
	}
}

func (l *linker) linkProjection(c *geodesy.CRS, d crsDoc, f *geodesy.ReferenceFrame) {
	conv, ok := l.conversions[d.Conversion]
	if !ok {
		l.fail(geodesy.NewUnknownReference("crs", d.ID, "conversion", d.Conversion))
		return
	}
	if f.Ellipsoid == geodesy.NoIndex {
		return
	}
	i, err := l.instance(conv, l.c.Ellipsoids[f.Ellipsoid])
	if err != nil {
		l.fail(fmt.Errorf("crs %s: %w", d.ID, err))
		return
	}
	c.Conversion = i
}

// params converts the parameters into meters, unitless scale and radians
func (l *linker) params(d transformationDoc) []float64 {
	tu := unitOr(d.TranslationUnit, geodesy.UnitMETER)
	su := unitOr(d.ScaleUnit, geodesy.UnitPPM)
	ru := unitOr(d.RotationUnit, geodesy.UnitSECOND)
	res := make([]float64, len(d.Params))
	for i, v := range d.Params {
		from, to := tu, geodesy.UnitMETER
		switch i % 7 {
		case 3:
			from, to = su, geodesy.UnitUNITLESS
		case 4, 5, 6:
			from, to = ru, geodesy.UnitRADIAN
		}
		res[i] = l.convert(v, from, to, "transformation", d.ID, "params")
	}
	return res
}

func (l *linker) linkTransformations() {
	ids := map[string]int{}
	for _, d := range l.doc.Transformations {
		if !l.index(ids, "transformation", d.ID, len(l.c.Transformations)) {
			continue
		}
		t := &transfo.Transformation{
			ID:          d.ID,
			Name:        d.Name,
			Kind:        d.Kind,
			Source:      l.ref(l.c.frames, "transformation", d.ID, "source", d.Source),
			Target:      l.ref(l.c.frames, "transformation", d.ID, "target", d.Target),
			Params:      l.params(d),
			RefEpoch:    d.RefEpoch,
			Application: d.Application,
			Precision:   d.Precision,
			Coverage:    l.coverage(d.Coverage, "transformation", d.ID),
		}
		if t.Application == transfo.ApplicationUNDEFINED {
			t.Application = transfo.ApplicationDIRECT
		}
		if g := d.Grid; g != nil {
			t.Grid = &transfo.GridRef{
				Path:          g.Path,
				Format:        g.Format,
				LoadMode:      g.LoadMode,
				Authoritative: g.Authoritative,
				UnknownAsZero: g.UnknownAsZero,
			}
			if l.opts.baseDir != "" && !filepath.IsAbs(g.Path) {
				t.Grid.Path = filepath.Join(l.opts.baseDir, g.Path)
			}
			switch len(g.Approx) {
			case 0:
			case 3:
				copy(t.Grid.Approx[:], g.Approx)
			default:
				l.fail(geodesy.NewFieldError("approx", "transformation %s: 3 values expected (got %d)", d.ID, len(g.Approx)))
			}
		}
		if t.Source == geodesy.NoIndex || t.Target == geodesy.NoIndex {
			continue
		}
		src, tgt := &l.c.Frames[t.Source], &l.c.Frames[t.Target]
		if t.Kind == geodesy.FrameKindUNDEFINED {
			t.Kind = src.Kind
		}
		// vertical transformations go from a vertical frame to a geodetic one
		if t.Kind == geodesy.FrameKindVERTICAL && (src.Kind != geodesy.FrameKindVERTICAL || tgt.Kind != geodesy.FrameKindGEODETIC) ||
			t.Kind == geodesy.FrameKindGEODETIC && (src.Kind != geodesy.FrameKindGEODETIC || tgt.Kind != geodesy.FrameKindGEODETIC) {
			l.fail(geodesy.NewFieldError("kind", "transformation %s: %s transformation from the %s frame %s to the %s frame %s",
				d.ID, t.Kind, src.Kind, src.ID, tgt.Kind, tgt.ID))
			continue
		}
		t.SourceKey, t.TargetKey = src.TransformationKey(), tgt.TransformationKey()
		if err := t.Validate(); err != nil {
			l.fail(err)
			continue
		}
		l.c.Transformations = append(l.c.Transformations, t)
		key := [2]string{t.SourceKey, t.TargetKey}
		l.c.transfos[key] = append(l.c.transfos[key], len(l.c.Transformations)-1)
	}
}

// frameCoverages gives the frames without coverage the union of the coverages of their CRSs and transformations
func (l *linker) frameCoverages() {
	declared := make([]bool, len(l.c.Frames))
	for i := range l.c.Frames {
		declared[i] = !l.c.Frames[i].Coverage.IsEmpty()
	}
	extend := func(i int, c proj.Coverage) {
		if !declared[i] && !c.IsEmpty() {
			l.c.Frames[i].Coverage = l.c.Frames[i].Coverage.Extend(c)
		}
	}
	for _, c := range l.c.CRSs {
		extend(c.Frame, c.Coverage)
	}
	for _, t := range l.c.Transformations {
		extend(t.Source, t.Coverage)
		extend(t.Target, t.Coverage)
	}
}
