// Package classify defines the closed object-class enumerations (spec §3)
// and the OSM tag-value mapping table that assigns a raw way or node to one
// of them (spec §6.1).
package classify

// PointClass is the closed enumeration of point object kinds.
type PointClass uint8

const (
	PointNone PointClass = iota
	PointStationPlatform
	PointSubwayEntrance
	pointClassCount
)

func (c PointClass) String() string {
	switch c {
	case PointNone:
		return "None"
	case PointStationPlatform:
		return "StationPlatform"
	case PointSubwayEntrance:
		return "SubwayEntrance"
	default:
		return "Unknown"
	}
}

// LinearClass is the closed enumeration of linear object kinds.
type LinearClass uint8

const (
	LinearNone LinearClass = iota
	LinearRoad
	LinearPedestrian
	LinearWaterway
	LinearRailway
	LinearTram
	LinearMonorail
	LinearBarrier
	linearClassCount
)

func (c LinearClass) String() string {
	switch c {
	case LinearNone:
		return "None"
	case LinearRoad:
		return "Road"
	case LinearPedestrian:
		return "Pedestrian"
	case LinearWaterway:
		return "Waterway"
	case LinearRailway:
		return "Railway"
	case LinearTram:
		return "Tram"
	case LinearMonorail:
		return "Monorail"
	case LinearBarrier:
		return "Barrier"
	default:
		return "Unknown"
	}
}

// ArealClass is the closed enumeration of areal object kinds.
type ArealClass uint8

const (
	ArealNone ArealClass = iota
	ArealBuilding
	ArealWater
	ArealWood
	ArealGrassland
	ArealCemetery
	ArealResidential
	ArealIndustrial
	ArealAdministrative
	arealClassCount
)

func (c ArealClass) String() string {
	switch c {
	case ArealNone:
		return "None"
	case ArealBuilding:
		return "Building"
	case ArealWater:
		return "Water"
	case ArealWood:
		return "Wood"
	case ArealGrassland:
		return "Grassland"
	case ArealCemetery:
		return "Cemetery"
	case ArealResidential:
		return "Residential"
	case ArealIndustrial:
		return "Industrial"
	case ArealAdministrative:
		return "Administrative"
	default:
		return "Unknown"
	}
}

// PointClassCount, LinearClassCount and ArealClassCount are the sizes of
// the three enumerations, including None. They bound the per-class style
// tables written to the binary file (spec §6.3).
const (
	PointClassCount  = int(pointClassCount)
	LinearClassCount = int(linearClassCount)
	ArealClassCount  = int(arealClassCount)
)

// pointClassNames, linearClassNames and arealClassNames are the string keys
// recognized in style configuration files (spec §6.2). They intentionally
// do not cover OSM tag
// values — see WayClass/NodeClass below for that mapping.
var pointClassNames = map[string]PointClass{
	"StationPlatform": PointStationPlatform,
	"SubwayEntrance":  PointSubwayEntrance,
}

var linearClassNames = map[string]LinearClass{
	"Road":        LinearRoad,
	"Pedestrian":  LinearPedestrian,
	"Waterway":    LinearWaterway,
	"Railway":     LinearRailway,
	"Tram":        LinearTram,
	"Monorail":    LinearMonorail,
	"Barrier":     LinearBarrier,
}

var arealClassNames = map[string]ArealClass{
	"Building":       ArealBuilding,
	"Water":          ArealWater,
	"Wood":           ArealWood,
	"Grassland":      ArealGrassland,
	"Cemetery":       ArealCemetery,
	"Residential":    ArealResidential,
	"Industrial":     ArealIndustrial,
	"Administrative": ArealAdministrative,
}

// PointClassByName resolves a style-file class name, returning PointNone
// for anything unrecognized (soft failure, per spec §6.2 "Parse errors on
// individual entries are warnings").
func PointClassByName(name string) PointClass { return pointClassNames[name] }

// LinearClassByName resolves a style-file class name.
func LinearClassByName(name string) LinearClass { return linearClassNames[name] }

// ArealClassByName resolves a style-file class name.
func ArealClassByName(name string) ArealClass { return arealClassNames[name] }
