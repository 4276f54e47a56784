package nav

// Landmark is a named, coordinate-addressable point of interest on a map.
type Landmark struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Label string `json:"label"`
}

// Registry is the read-only landmark lookup the navigator targets against.
// Implementations load static map data; a registry with no data simply
// reports misses.
type Registry interface {
	// Lookup returns the landmark for a map and key.
	Lookup(mapID int, key string) (Landmark, bool)

	// Keys returns the landmark keys available on a map, in stable order.
	Keys(mapID int) []string

	// MapName returns the display name of a map.
	MapName(mapID int) (string, bool)
}
