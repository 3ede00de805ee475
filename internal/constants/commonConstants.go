package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixAirport  CachePrefix = "AIRPORT_"
	CachePrefixAircraft CachePrefix = "AIRCRAFT_"
)

// RecentWindowSeconds is the lookback used by the weather "recent" query.
const RecentWindowSeconds = 24 * 60 * 60
