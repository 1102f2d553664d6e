package project

// Kind identifies which of the three closed projections produced a Data
// IR, and is written verbatim into the file header (spec §6.3 "projection
// kind").
type Kind uint8

const (
	KindMercator      Kind = 0
	KindStereographic Kind = 1
	KindAlbers        Kind = 2
)

// Projection is the closed sum type spec §9 calls for: no open extension
// inside the compiler is required, so a plain interface with exactly three
// implementations (Mercator, Stereographic, Albers) is sufficient.
type Projection interface {
	Project(GeoPoint) Point
	Kind() Kind
}

// New builds the Projection matching kind, parameterized by the data
// bounding box when the projection needs one (Stereographic, Albers).
func New(kind Kind, bboxMin, bboxMax GeoPoint) Projection {
	switch kind {
	case KindStereographic:
		return NewStereographic(bboxMin, bboxMax)
	case KindAlbers:
		return NewAlbers(bboxMin, bboxMax)
	default:
		return Mercator{}
	}
}
