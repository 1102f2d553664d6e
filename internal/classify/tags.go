package classify

// Closed tag-value tables, one per OSM tag key, grounded on
// original_source/source/exporter/primary_export.cpp. Keys absent from a
// table classify as the corresponding *None value; ingest treats that as a
// soft skip (spec §4.1, §7).

var highwayLinearClasses = map[string]LinearClass{
	"motorway":        LinearRoad,
	"trunk":           LinearRoad,
	"primary":         LinearRoad,
	"secondary":       LinearRoad,
	"tertiary":        LinearRoad,
	"unclassified":    LinearRoad,
	"residential":     LinearRoad,
	"motorway_link":   LinearRoad,
	"trunk_link":      LinearRoad,
	"primary_link":    LinearRoad,
	"secondary_link":  LinearRoad,
	"tertiary_link":   LinearRoad,
	"living_street":   LinearRoad,
	"service":         LinearRoad,
	"track":           LinearRoad,
	"bus_guideway":    LinearRoad,
	"raceway":         LinearRoad,
	"road":            LinearRoad,
	"pedestrian":      LinearPedestrian,
	"footway":         LinearPedestrian,
	"path":            LinearPedestrian,
}

var waterwayLinearClasses = map[string]LinearClass{
	"stream": LinearWaterway,
}

var railwayLinearClasses = map[string]LinearClass{
	"rail":     LinearRailway,
	"monorail": LinearMonorail,
	"tram":     LinearTram,
}

var barrierLinearClasses = map[string]LinearClass{
	"cable_barrier":  LinearBarrier,
	"city_wall":      LinearBarrier,
	"fence":          LinearBarrier,
	"hedge":          LinearBarrier,
	"wall":           LinearBarrier,
	"hampshire_gate": LinearBarrier,
}

var naturalArealClasses = map[string]ArealClass{
	"water":     ArealWater,
	"wood":      ArealWood,
	"scrub":     ArealWood,
	"grassland": ArealGrassland,
	"heath":     ArealGrassland,
}

var landuseArealClasses = map[string]ArealClass{
	"basin":       ArealWater,
	"cemetery":    ArealCemetery,
	"forest":      ArealWood,
	"wood":        ArealWood,
	"grass":       ArealGrassland,
	"residential": ArealResidential,
	"industrial":  ArealIndustrial,
	"garages":     ArealIndustrial,
	"railway":     ArealIndustrial,
	"commercial":  ArealAdministrative,
	"retail":      ArealAdministrative,
}

var amenityArealClasses = map[string]ArealClass{
	"grave_yard":   ArealCemetery,
	"school":       ArealAdministrative,
	"college":      ArealAdministrative,
	"kindergarten": ArealAdministrative,
	"library":      ArealAdministrative,
	"university":   ArealAdministrative,
	"clinic":       ArealAdministrative,
	"dentist":      ArealAdministrative,
	"doctors":      ArealAdministrative,
	"hospital":     ArealAdministrative,
	"nursing_home": ArealAdministrative,
}

// Tags holds a way's or node's key/value pairs for classification. It may
// carry any keys; WayClass and NodeClass only look at the keys they know.
type Tags map[string]string

// WayClass classifies a way from its tags, trying keys in the priority
// order fixed by spec §4.1: highway, waterway, railway, barrier, building,
// natural, landuse, amenity. Exactly one of the two returned classes is
// non-None, or both are None if nothing matched.
func WayClass(tags Tags) (LinearClass, ArealClass) {
	if v, ok := tags["highway"]; ok {
		if c := highwayLinearClasses[v]; c != LinearNone {
			return c, ArealNone
		}
	}
	if v, ok := tags["waterway"]; ok {
		if c := waterwayLinearClasses[v]; c != LinearNone {
			return c, ArealNone
		}
	}
	if v, ok := tags["railway"]; ok {
		if c := railwayLinearClasses[v]; c != LinearNone {
			return c, ArealNone
		}
	}
	if v, ok := tags["barrier"]; ok {
		if c := barrierLinearClasses[v]; c != LinearNone {
			return c, ArealNone
		}
	}
	if _, ok := tags["building"]; ok {
		return LinearNone, ArealBuilding
	}
	if v, ok := tags["natural"]; ok {
		if c := naturalArealClasses[v]; c != ArealNone {
			return LinearNone, c
		}
	}
	if v, ok := tags["landuse"]; ok {
		if c := landuseArealClasses[v]; c != ArealNone {
			return LinearNone, c
		}
	}
	if v, ok := tags["amenity"]; ok {
		if c := amenityArealClasses[v]; c != ArealNone {
			return LinearNone, c
		}
	}
	return LinearNone, ArealNone
}

// NodeClass classifies a standalone node from its tags (spec §4.1 third
// pass / §6.1 node rows).
func NodeClass(tags Tags) PointClass {
	if v, ok := tags["public_transport"]; ok && v == "platform" {
		return PointStationPlatform
	}
	if v, ok := tags["highway"]; ok && v == "bus_stop" {
		return PointStationPlatform
	}
	if v, ok := tags["railway"]; ok && v == "subway_entrance" {
		return PointSubwayEntrance
	}
	return PointNone
}
