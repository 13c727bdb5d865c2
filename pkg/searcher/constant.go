package searcher

const (
	// caps for the unified search dropdown. campuses come from a short static list and
	// keep source order; places are distance-ranked, so the cap keeps the nearest ones.
	MAX_CAMPUS_RESULTS = 4
	MAX_PLACE_RESULTS  = 5
)

const (
	CAMPUS_GROUP_LABEL        = "Campuses"
	PLACE_GROUP_LABEL_GENERIC = "Places"
	PLACE_GROUP_LABEL_NEARBY  = "Near you"
)
