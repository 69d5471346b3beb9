package serial

// Version identifies a stream's format generation. Spec §4.4: a reader
// must accept the latest version and exactly one version back.
const (
	// VersionCurrent is written by Writer and is the preferred read version.
	VersionCurrent = 2
	// VersionPrevious is the oldest version Reader still accepts. v1 streams
	// predate the ATTRIBUTE entity (attributes were silently dropped), so a
	// v1 read simply never populates a Set's attribute chain.
	VersionPrevious = 1

	magic = "SVLIS"
)

// The closed set of entity tags (spec §6).
const (
	tagPoint     = "POINT"
	tagLine      = "LINE"
	tagPlane     = "PLANE"
	tagInterval  = "INTERVAL"
	tagBox       = "BOX"
	tagPrim      = "PRIM"
	tagSet       = "SET"
	tagSetList   = "SET_LIST"
	tagAttribute = "ATTRIBUTE"
	tagModel     = "MODEL"
	tagPolygon   = "POLYGON"
)
