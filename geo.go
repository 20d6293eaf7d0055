package leafgo

import "fmt"

// LatLng is a geographical point. Natively it travels as [lat, lng] and
// comes back as {lat, lng}.
type LatLng struct {
	Lat float64 `leaflet:"lat"`
	Lng float64 `leaflet:"lng"`
}

func (ll LatLng) String() string {
	return fmt.Sprintf("LatLng(%g, %g)", ll.Lat, ll.Lng)
}

// Bounds is a rectangular geographical area. The tags follow the fields of
// a native L.LatLngBounds.
type Bounds struct {
	SouthWest LatLng `leaflet:"_southWest"`
	NorthEast LatLng `leaflet:"_northEast"`
}

// Contains reports whether ll lies inside b, edges included.
func (b Bounds) Contains(ll LatLng) bool {
	return ll.Lat >= b.SouthWest.Lat && ll.Lat <= b.NorthEast.Lat &&
		ll.Lng >= b.SouthWest.Lng && ll.Lng <= b.NorthEast.Lng
}

// Center returns the midpoint of b.
func (b Bounds) Center() LatLng {
	return LatLng{
		Lat: (b.SouthWest.Lat + b.NorthEast.Lat) / 2,
		Lng: (b.SouthWest.Lng + b.NorthEast.Lng) / 2,
	}
}
