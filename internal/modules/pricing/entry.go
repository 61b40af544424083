package pricing

import "github.com/aristath/catalyst-trader/internal/domain"

// RecommendEntryPrice blends the base and event-adjusted prices into a
// suggested limit price.
//
// Without a catalyst inside the event window, the recommendation is a flat
// 5% discount to theoretical value. With one, the buyer should pay only a
// fraction of the event premium: more when sentiment supports the move,
// less when sentiment fights it, and less again when the event is imminent
// and the premium is about to crush.
func RecommendEntryPrice(basePrice, eventAdjustedPrice float64, event *domain.MarketEvent, daysToEvent int, sentiment *domain.SentimentScore) float64 {
	if event == nil || daysToEvent > EventWindowDays {
		return basePrice * NoCatalystDiscount
	}

	eventPremium := eventAdjustedPrice - basePrice

	discount := BasePremiumDiscount
	if sentiment != nil {
		if sentiment.OverallScore > BullishSentimentBound {
			discount = BullishPremiumDiscount
		} else if sentiment.OverallScore < BearishSentimentBound {
			discount = BearishPremiumDiscount
		}
	}

	if daysToEvent <= ImminentEventDays {
		discount *= ImminentDiscountModifier
	}

	return basePrice + eventPremium*discount
}
