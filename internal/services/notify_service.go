package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"kisansetu/internal/geo"
	"kisansetu/internal/models"
	"kisansetu/internal/repositories"
	"kisansetu/pkg/rabbitmq"
)

// DiseaseAlert is a farmer's disease report fanned out to nearby merchants.
type DiseaseAlert struct {
	DiseaseName          string    `json:"diseaseName" validate:"required"`
	DiseaseDescription   string    `json:"diseaseDescription"`
	RecommendedTreatment string    `json:"recommendedTreatment"`
	FarmerLocation       geo.Point `json:"farmerLocation"`
}

// Notifier delivers a disease alert to a single merchant.
type Notifier interface {
	Send(ctx context.Context, merchant models.Merchant, alert DiseaseAlert) error
}

// MockEmailNotifier logs the alert instead of sending real mail. A real
// deployment would swap in an SES/SendGrid-backed Notifier here.
type MockEmailNotifier struct{}

// Send logs the alert email and simulates delivery latency.
func (MockEmailNotifier) Send(ctx context.Context, merchant models.Merchant, alert DiseaseAlert) error {
	subject := "Crop Disease Alert - Potential Sales Opportunity"
	body := fmt.Sprintf(
		"Dear %s,\n\nA farmer in your area has detected %s in their crops.\n\n"+
			"Recommended treatment: %s\n\n"+
			"This could be a sales opportunity for your agricultural products. "+
			"Please check your inventory and consider reaching out to the farmer.\n\n"+
			"Best regards,\nKisanSetu Team",
		merchant.Name, alert.DiseaseName, alert.RecommendedTreatment)

	log.Printf("MOCK EMAIL to %s:\nSubject: %s\nMessage: %s", merchant.Email, subject, body)

	select {
	case <-time.After(100 * time.Millisecond):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NotifyService fans a disease alert out to merchants within radius.
type NotifyService struct {
	merchantRepo repositories.MerchantRepository
	notifier     Notifier
	radiusKm     float64
	mqClient     *rabbitmq.Client // may be nil
}

// NewNotifyService creates a new NotifyService.
func NewNotifyService(merchantRepo repositories.MerchantRepository, notifier Notifier, radiusKm float64, mqClient *rabbitmq.Client) *NotifyService {
	return &NotifyService{
		merchantRepo: merchantRepo,
		notifier:     notifier,
		radiusKm:     radiusKm,
		mqClient:     mqClient,
	}
}

// NotifyNearby sends the alert to every merchant within the radius (plus
// merchants without coordinates on file) and returns how many sends
// succeeded. Sends run concurrently; one merchant's failure never aborts
// the others, and no ordering is guaranteed among them. There is no retry
// and no idempotency key: resending the same report re-notifies everyone.
func (s *NotifyService) NotifyNearby(ctx context.Context, alert DiseaseAlert) (int, error) {
	merchants, err := s.merchantRepo.FindWithinRadius(alert.FarmerLocation, s.radiusKm)
	if err != nil {
		return 0, fmt.Errorf("failed to find nearby merchants: %w", err)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		notified int
	)
	for _, merchant := range merchants {
		wg.Add(1)
		go func(m models.Merchant) {
			defer wg.Done()
			if err := s.notifier.Send(ctx, m, alert); err != nil {
				log.Printf("Failed to notify merchant %s: %v", m.ID, err)
				return
			}
			mu.Lock()
			notified++
			mu.Unlock()
		}(merchant)
	}
	wg.Wait()

	// Publish the alert event, best effort
	if s.mqClient != nil {
		event := map[string]interface{}{
			"disease":  alert.DiseaseName,
			"lat":      alert.FarmerLocation.Lat,
			"lon":      alert.FarmerLocation.Lon,
			"notified": notified,
		}
		if err := s.mqClient.PublishJSON(rabbitmq.AlertQueue, event); err != nil {
			log.Printf("Warning: failed to publish disease alert event: %v", err)
		}
	}

	return notified, nil
}
