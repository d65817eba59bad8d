package services_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"kisansetu/internal/geo"
	"kisansetu/internal/models"
	"kisansetu/internal/repositories"
	"kisansetu/internal/services"

	"github.com/stretchr/testify/assert"
)

// recordingNotifier captures which merchants were notified and can be
// told to fail for specific merchant ids.
type recordingNotifier struct {
	mu      sync.Mutex
	sent    []string
	failFor map[string]bool
}

func (n *recordingNotifier) Send(ctx context.Context, merchant models.Merchant, alert services.DiseaseAlert) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.failFor[merchant.ID] {
		return fmt.Errorf("smtp unavailable")
	}
	n.sent = append(n.sent, merchant.ID)
	return nil
}

func floatPtr(f float64) *float64 { return &f }

func alertAt(point geo.Point) services.DiseaseAlert {
	return services.DiseaseAlert{
		DiseaseName:          "Late Blight",
		DiseaseDescription:   "Fungal infection spreading on tomato crops",
		RecommendedTreatment: "Copper-based fungicide",
		FarmerLocation:       point,
	}
}

func TestNotifyService_NotifyNearby(t *testing.T) {
	farm := geo.Point{Lat: 28.6, Lon: 77.2}
	merchants := repositories.DefaultMerchantFixture(farm)
	// Roughly 111 km north, well outside the 50 km radius
	merchants = append(merchants, models.Merchant{
		ID:   "far",
		Name: "Distant Supplies",
		Lat:  floatPtr(farm.Lat + 1.0),
		Lon:  floatPtr(farm.Lon),
	})
	// No coordinates on file: always notified
	merchants = append(merchants, models.Merchant{
		ID:   "nocoords",
		Name: "Mail Order Agro",
	})

	notifier := &recordingNotifier{}
	notifyService := services.NewNotifyService(
		repositories.NewFixtureMerchantRepository(merchants), notifier, 50, nil)

	notified, err := notifyService.NotifyNearby(context.Background(), alertAt(farm))
	assert.NoError(t, err)
	assert.Equal(t, 4, notified)
	assert.ElementsMatch(t, []string{"1", "2", "3", "nocoords"}, notifier.sent)
}

func TestNotifyService_NoNearbyMerchants(t *testing.T) {
	farm := geo.Point{Lat: 28.6, Lon: 77.2}
	// The whole directory clusters around a point ~270 km away
	merchants := repositories.DefaultMerchantFixture(geo.Point{Lat: 31.0, Lon: 77.2})

	notifier := &recordingNotifier{}
	notifyService := services.NewNotifyService(
		repositories.NewFixtureMerchantRepository(merchants), notifier, 50, nil)

	notified, err := notifyService.NotifyNearby(context.Background(), alertAt(farm))
	assert.NoError(t, err)
	assert.Equal(t, 0, notified)
	assert.Empty(t, notifier.sent)
}

func TestNotifyService_OneFailureDoesNotAbortOthers(t *testing.T) {
	farm := geo.Point{Lat: 28.6, Lon: 77.2}
	merchants := repositories.DefaultMerchantFixture(farm)

	notifier := &recordingNotifier{failFor: map[string]bool{"2": true}}
	notifyService := services.NewNotifyService(
		repositories.NewFixtureMerchantRepository(merchants), notifier, 50, nil)

	notified, err := notifyService.NotifyNearby(context.Background(), alertAt(farm))
	assert.NoError(t, err)
	assert.Equal(t, 2, notified)
	assert.ElementsMatch(t, []string{"1", "3"}, notifier.sent)
}
