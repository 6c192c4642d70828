package utils

import (
	"math"

	"github.com/abraham-translation/abraham-translation-api/models"
)

// BaseRatePerWord is the standard-turnaround price per word in USD
const BaseRatePerWord = 0.12

// EstimatePrice computes the estimated price for a word count and urgency
// level, rounded to cents: words * 0.12 * multiplier. The urgency must be
// validated before calling; unknown urgencies fall back to the standard
// multiplier.
func EstimatePrice(wordCount int, urgency string) float64 {
	multiplier, ok := models.UrgencyMultipliers[urgency]
	if !ok {
		multiplier = models.UrgencyMultipliers[models.UrgencyStandard]
	}
	price := float64(wordCount) * BaseRatePerWord * multiplier
	return math.Round(price*100) / 100
}
