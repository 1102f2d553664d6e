package model

// ZLevel orders overlapping lines and polygons within a single zoom level
// (spec glossary "z-level"). The valid range is [0, MaxZLevel]; objects
// that do not specify one get ZeroZLevel, the neutral middle of the range,
// so that both "draw under" and "draw over" adjustments are available
// without renumbering everything else (spec §3, open question: the source
// names these g_max_z_level/g_zero_z_level without fixing their values —
// resolved here, see DESIGN.md).
const (
	MaxZLevel  = 15
	ZeroZLevel = 7
)

// NoZLevel marks "no group emitted yet" while accumulating chunk groups
// (spec §4.8 sentinel discussion, "prev_z_level != -~0u"). It is one past
// MaxZLevel so it never collides with a real level.
const NoZLevel = MaxZLevel + 1
