package pipeline

import (
	"sort"

	"github.com/panzermaps/compiler/internal/classify"
	"github.com/panzermaps/compiler/internal/model"
	"github.com/panzermaps/compiler/internal/style"
)

// PhaseSort reorders a zoom level's objects into their final draw order
// (spec §4.7). Grounded on phase_sort_pass.cpp: points are grouped by class
// in the style's class order; lines are grouped the same way, then stably
// sorted by (z-level ascending, class order ascending); areals are grouped
// by (z-level ascending, phase order ascending) and within each group
// sorted by signed double area, descending, so the largest polygon of a
// phase is drawn first and smaller ones land on top of it.
//
// Classes with no entry in styles are dropped entirely — only configured
// classes are ever drawn (spec §6.2). The original keeps point and linear
// class order as the sequence those classes are declared in the style
// file; this port's style.Load collects them into maps, so class
// enumeration order stands in for declaration order here (see DESIGN.md).
func PhaseSort(in *model.Data, styles *style.Styles) model.Data {
	out := model.NewData(in)

	for class := classify.PointClass(1); int(class) < classify.PointClassCount; class++ {
		if _, ok := styles.PointStyles[class]; !ok {
			continue
		}
		for _, po := range in.Points {
			if po.Class != class {
				continue
			}
			out.PointVertices = append(out.PointVertices, in.PointVertices[po.VertexIndex])
			out.Points = append(out.Points, model.PointObject{Class: po.Class, VertexIndex: len(out.PointVertices) - 1})
		}
	}

	classOrder := make(map[classify.LinearClass]int)
	order := 0
	for class := classify.LinearClass(1); int(class) < classify.LinearClassCount; class++ {
		if _, ok := styles.LinearStyles[class]; !ok {
			continue
		}
		classOrder[class] = order
		order++
		for _, lo := range in.Lines {
			if lo.Class != class {
				continue
			}
			first := len(out.LineVertices)
			out.LineVertices = append(out.LineVertices, in.LineVertices[lo.FirstVertex:lo.FirstVertex+lo.VertexCount]...)
			out.Lines = append(out.Lines, model.LinearObject{
				Class:  lo.Class,
				ZLevel: lo.ZLevel,
				Part:   model.Part{FirstVertex: first, VertexCount: lo.VertexCount},
			})
		}
	}
	sort.SliceStable(out.Lines, func(i, j int) bool {
		li, lj := out.Lines[i], out.Lines[j]
		if li.ZLevel != lj.ZLevel {
			return li.ZLevel < lj.ZLevel
		}
		return classOrder[li.Class] < classOrder[lj.Class]
	})

	copyRing := func(dst *model.Data, p model.Part) model.Part {
		first := len(dst.ArealVertices)
		dst.ArealVertices = append(dst.ArealVertices, in.ArealVertices[p.FirstVertex:p.FirstVertex+p.VertexCount]...)
		return model.Part{FirstVertex: first, VertexCount: p.VertexCount}
	}

	for zLevel := 0; zLevel <= model.MaxZLevel; zLevel++ {
		for _, phase := range styles.ArealPhases {
			var group []model.ArealObject
			for _, ao := range in.Areals {
				if ao.ZLevel != zLevel {
					continue
				}
				if _, ok := phase.Classes[ao.Class]; !ok {
					continue
				}
				if ao.IsMultipolygon() {
					multi := model.Multipolygon{}
					for _, p := range ao.Multi.Inners {
						multi.Inners = append(multi.Inners, copyRing(&out, p))
					}
					for _, p := range ao.Multi.Outers {
						multi.Outers = append(multi.Outers, copyRing(&out, p))
					}
					group = append(group, model.ArealObject{Class: ao.Class, ZLevel: ao.ZLevel, Multi: &multi})
				} else {
					group = append(group, model.ArealObject{Class: ao.Class, ZLevel: ao.ZLevel, Part: copyRing(&out, ao.Part)})
				}
			}

			sort.SliceStable(group, func(i, j int) bool {
				return arealDoubleArea(&out, group[i]) > arealDoubleArea(&out, group[j])
			})
			out.Areals = append(out.Areals, group...)
		}
	}

	return out
}

// arealDoubleArea is the area used to order polygons within a phase: for a
// simple polygon, the absolute value of its signed double area; for a
// multipolygon, the sum of its outer rings' areas minus its inner rings'
// (spec §4.7).
func arealDoubleArea(d *model.Data, ao model.ArealObject) int64 {
	ringArea := func(p model.Part) int64 {
		v := d.ArealVertices[p.FirstVertex : p.FirstVertex+p.VertexCount]
		a := signedDoubleArea(v)
		if a < 0 {
			return -a
		}
		return a
	}
	if ao.IsMultipolygon() {
		var total int64
		for _, p := range ao.Multi.Outers {
			total += ringArea(p)
		}
		for _, p := range ao.Multi.Inners {
			total -= ringArea(p)
		}
		return total
	}
	return ringArea(ao.Part)
}
