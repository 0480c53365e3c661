package analyze

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// dateAddedLayout is the single supported layout for the catalog's
// addition-date field, e.g. "January 1, 2020".
const dateAddedLayout = "January 2, 2006"

// parsedDate is the memoized result for one raw date string. ok is false for
// strings that failed to parse, so repeated failures skip re-parsing too.
type parsedDate struct {
	t  time.Time
	ok bool
}

// dateCache memoizes addition-date parsing across sorts and delta
// computations. The cache is thread-safe, so the analyzer stays safe for
// concurrent readers.
var dateCache = cache.New(time.Hour, 10*time.Minute)

// parseDateAdded parses a raw addition date, consulting the memo first.
func parseDateAdded(raw string) (time.Time, bool) {
	if cached, found := dateCache.Get(raw); found {
		pd := cached.(parsedDate)
		return pd.t, pd.ok
	}

	t, err := time.Parse(dateAddedLayout, raw)
	pd := parsedDate{t: t, ok: err == nil}
	dateCache.Set(raw, pd, cache.DefaultExpiration)
	return pd.t, pd.ok
}
