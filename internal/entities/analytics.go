package entities

import "time"

type DeliveryStats struct {
	Total             int64
	Delivered         int64
	Missed            int64
	Cancelled         int64
	CompletionRate    float64
	MissedRate        float64
	TotalRevenueCents int64
	PerformanceScore  float64
}

type DeliveryReport struct {
	From           time.Time
	To             time.Time
	DistributorRef string
	Overall        DeliveryStats
	BySlot         map[TimeSlot]DeliveryStats
	ByType         map[DeliveryType]DeliveryStats
}
