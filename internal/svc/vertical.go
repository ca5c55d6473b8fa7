package svc

import (
	"context"
	"fmt"

	"github.com/airbusgeo/geoshift/internal/geodesy"
	"github.com/airbusgeo/geoshift/internal/transfo"
)

// verticalStep is a vertical transformation, applied in the source frame (before the datum shift) or in the target frame
type verticalStep struct {
	index    int
	atSource bool
}

// verticalPlan relates the altitudes of the source and target CRSs to the ellipsoidal heights.
// A vertical transformation goes from a vertical frame to the geodetic frame its heights refer to.
type verticalPlan struct {
	svc      *Service
	src, tgt *verticalStep
	srcUnit  geodesy.Unit
	// same vertical frame on both sides
	passthrough bool
	// input altitude, output altitude when computed in the source frame (m)
	w, wOut float64
}

func (svc *Service) selectVertical(verticalKey, srcKey string, lon, lat float64, anchors ...string) (*verticalStep, error) {
	var err error
	for _, anchor := range anchors {
		idx := svc.catalog.Between(verticalKey, anchor)
		candidates := make([]*transfo.Transformation, len(idx))
		for i, j := range idx {
			candidates[i] = svc.catalog.Transformation(j)
		}
		var i int
		if i, err = transfo.SelectTransfo(lon, lat, candidates); err == nil {
			return &verticalStep{index: idx[i], atSource: anchor == srcKey}, nil
		}
	}
	return nil, err
}

func (svc *Service) planVertical(ctx context.Context, src, tgt compound, srcKey, tgtKey string, lon, lat float64) (*verticalPlan, error) {
	p := &verticalPlan{svc: svc}
	if src.vertical != nil {
		p.srcUnit = src.vertical.LinearUnit
	}
	if src.vertical != nil && tgt.vertical != nil && svc.verticalKey(src) == svc.verticalKey(tgt) {
		p.passthrough = true
		return p, nil
	}
	var err error
	if src.vertical != nil {
		if p.src, err = svc.selectVertical(svc.verticalKey(src), srcKey, lon, lat, srcKey, tgtKey); err != nil {
			return nil, err
		}
	}
	if tgt.vertical != nil {
		if p.tgt, err = svc.selectVertical(svc.verticalKey(tgt), srcKey, lon, lat, tgtKey, srcKey); err != nil {
			return nil, err
		}
	}
	if p.src != nil && !p.src.atSource && p.tgt != nil && p.tgt.atSource {
		return nil, geodesy.NewInvalidArgument("the altitudes of %s cannot be related to the altitudes of %s", src.vertical.ID, tgt.vertical.ID)
	}
	return p, nil
}

func (p *verticalPlan) apply(ctx context.Context, pt *geodesy.Pt4d, s *verticalStep, dir geodesy.Direction) error {
	t := p.svc.catalog.Transformation(s.index)
	if err := t.Apply(ctx, pt, dir, p.svc.env(t)); err != nil {
		return fmt.Errorf("ConvertPoint[%s]: %w", t.ID, err)
	}
	pt.VerticalTransfoIndex = s.index
	return nil
}

// atSource runs before the datum shift. Without a known ellipsoidal height, the altitude stands for it.
func (p *verticalPlan) atSource(ctx context.Context, pt *geodesy.Pt4d) error {
	if p.srcUnit != geodesy.UnitUNDEFINED {
		var err error
		if pt.W, err = geodesy.UnitConvert(pt.W, p.srcUnit, geodesy.UnitMETER); err != nil {
			return err
		}
		p.w = pt.W
	}
	switch {
	case p.src != nil && p.src.atSource:
		if err := p.apply(ctx, pt, p.src, geodesy.DirectionFORWARD); err != nil {
			return err
		}
	case p.src != nil || p.passthrough:
		pt.H = pt.W
	}
	if p.tgt != nil && p.tgt.atSource {
		if err := p.apply(ctx, pt, p.tgt, geodesy.DirectionREVERSE); err != nil {
			return err
		}
		p.wOut = pt.W
	}
	return nil
}

// atTarget runs after the datum shift
func (p *verticalPlan) atTarget(ctx context.Context, pt *geodesy.Pt4d) error {
	if p.src != nil && !p.src.atSource {
		pt.W = p.w
		if err := p.apply(ctx, pt, p.src, geodesy.DirectionFORWARD); err != nil {
			return err
		}
	}
	switch {
	case p.tgt != nil && !p.tgt.atSource:
		if err := p.apply(ctx, pt, p.tgt, geodesy.DirectionREVERSE); err != nil {
			return err
		}
	case p.tgt != nil:
		pt.W = p.wOut
	case p.passthrough:
		pt.W = p.w
	}
	if pt.WantsDeflection() {
		pt.VerticalPrecision = geodesy.PrecisionUnknown
	}
	return nil
}
