package datastructure

// ChicagoCenter is the city-wide fallback anchor used when neither a user fix nor an
// active campus is available.
var ChicagoCenter = Point{Lat: 41.8781, Lng: -87.6298}

// ResolveReference picks the coordinate used as the "distance from" anchor for ranking
// nearby places. Priority: explicit user geolocation fix, then the active campus center,
// then the city-wide fallback. A denied or failed geolocation request simply leaves
// userFix nil and the next tier applies.
func ResolveReference(userFix, campusCenter *Point) Point {
	if userFix != nil {
		return *userFix
	}
	if campusCenter != nil {
		return *campusCenter
	}
	return ChicagoCenter
}
