package geo_test

import (
	"testing"

	"kisansetu/internal/geo"

	"github.com/stretchr/testify/assert"
)

func TestDistance_SamePointIsZero(t *testing.T) {
	p := geo.Point{Lat: 28.6, Lon: 77.2}
	assert.Equal(t, 0.0, geo.Distance(p, p))
}

func TestDistance_IsSymmetric(t *testing.T) {
	a := geo.Point{Lat: 28.6, Lon: 77.2}
	b := geo.Point{Lat: 19.076, Lon: 72.8777}
	assert.InDelta(t, geo.Distance(a, b), geo.Distance(b, a), 1e-9)
}

func TestDistance_NearbyMerchant(t *testing.T) {
	farm := geo.Point{Lat: 28.6, Lon: 77.2}
	shop := geo.Point{Lat: 28.605, Lon: 77.205}

	// About 0.74 km, comfortably inside a 50 km alert radius
	d := geo.Distance(farm, shop)
	assert.Greater(t, d, 0.5)
	assert.Less(t, d, 1.0)
}

func TestDistance_KnownCityPair(t *testing.T) {
	delhi := geo.Point{Lat: 28.6139, Lon: 77.209}
	mumbai := geo.Point{Lat: 19.076, Lon: 72.8777}

	// Great-circle distance Delhi to Mumbai is roughly 1148 km
	assert.InDelta(t, 1148, geo.Distance(delhi, mumbai), 5)
}

func TestDistance_OneDegreeLatitude(t *testing.T) {
	a := geo.Point{Lat: 28.6, Lon: 77.2}
	b := geo.Point{Lat: 29.6, Lon: 77.2}

	// One degree of latitude is about 111 km, beyond the default radius
	d := geo.Distance(a, b)
	assert.InDelta(t, 111.2, d, 1)
	assert.Greater(t, d, 50.0)
}
