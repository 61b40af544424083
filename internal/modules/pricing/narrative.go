package pricing

import (
	"fmt"
	"math"

	"github.com/aristath/catalyst-trader/internal/domain"
)

// NarrativeContext carries everything a recommendation rule can interpolate.
type NarrativeContext struct {
	Event       *domain.MarketEvent
	Sentiment   *domain.SentimentScore
	DaysToEvent int
	BasePrice   float64
	PremiumPct  float64
}

// narrativeRule pairs a predicate with a formatter. Rules are evaluated
// top-down and the first match wins, so their order IS the precedence.
type narrativeRule struct {
	name    string
	matches func(ctx NarrativeContext) bool
	render  func(ctx NarrativeContext) string
}

// narrativeLadder is evaluated in order by Narrate. The final rule is a
// catch-all, so a match always exists.
var narrativeLadder = []narrativeRule{
	{
		name: "no_event",
		matches: func(ctx NarrativeContext) bool {
			return ctx.Event == nil
		},
		render: func(ctx NarrativeContext) string {
			return fmt.Sprintf(
				"No significant events before expiration. Standard pricing applies: fair value around $%.2f.",
				ctx.BasePrice,
			)
		},
	},
	{
		name: "imminent_event",
		matches: func(ctx NarrativeContext) bool {
			return ctx.DaysToEvent <= ImminentEventDays
		},
		render: func(ctx NarrativeContext) string {
			return fmt.Sprintf(
				"%s in %d day(s): IV premium is near its peak (%+.1f%% over fair value). "+
					"Buying here pays top dollar for volatility - consider selling premium instead, "+
					"or wait for the post-event IV crush.",
				eventLabel(ctx.Event), ctx.DaysToEvent, ctx.PremiumPct,
			)
		},
	},
	{
		name: "near_event",
		matches: func(ctx NarrativeContext) bool {
			return ctx.DaysToEvent <= TimingNearDays
		},
		render: renderNearEvent,
	},
	{
		name: "mid_window",
		matches: func(ctx NarrativeContext) bool {
			return ctx.DaysToEvent <= TimingMidDays
		},
		render: func(ctx NarrativeContext) string {
			return fmt.Sprintf(
				"%s in %d days: fair entry zone (%+.1f%% event premium). "+
					"Positions opened here may still capture the IV expansion into the event.",
				eventLabel(ctx.Event), ctx.DaysToEvent, ctx.PremiumPct,
			)
		},
	},
	{
		name: "early_window",
		matches: func(ctx NarrativeContext) bool {
			return true
		},
		render: func(ctx NarrativeContext) string {
			return fmt.Sprintf(
				"%s in %d days: good time to establish positions (%+.1f%% event premium) "+
					"before the pre-event IV ramp begins.",
				eventLabel(ctx.Event), ctx.DaysToEvent, ctx.PremiumPct,
			)
		},
	},
}

// Narrate produces the human-readable trading recommendation for an
// event-adjusted pricing result.
func Narrate(ctx NarrativeContext) string {
	for _, rule := range narrativeLadder {
		if rule.matches(ctx) {
			return rule.render(ctx)
		}
	}
	// Unreachable: the ladder ends with a catch-all.
	return ""
}

// strongSentimentBound is the |score| above which the near-event rule
// names a directional bias.
const strongSentimentBound = 40.0

// richPremiumPct is the event premium above which the near-event rule
// advises waiting for a better entry.
const richPremiumPct = 20.0

func renderNearEvent(ctx NarrativeContext) string {
	if ctx.Sentiment != nil && math.Abs(ctx.Sentiment.OverallScore) > strongSentimentBound {
		bias := "bullish"
		if ctx.Sentiment.OverallScore < 0 {
			bias = "bearish"
		}

		if ctx.PremiumPct > richPremiumPct {
			return fmt.Sprintf(
				"Strong %s sentiment into the %s in %d days, but the event premium is already rich "+
					"(%+.1f%%). Wait for a pullback before entering.",
				bias, eventLabel(ctx.Event), ctx.DaysToEvent, ctx.PremiumPct,
			)
		}
		return fmt.Sprintf(
			"Strong %s sentiment into the %s in %d days. Premium (%+.1f%%) is still reasonable - "+
				"enter before IV ramps further.",
			bias, eventLabel(ctx.Event), ctx.DaysToEvent, ctx.PremiumPct,
		)
	}

	return fmt.Sprintf(
		"%s in %d days (%+.1f%% event premium): time your entry carefully, IV is ramping.",
		eventLabel(ctx.Event), ctx.DaysToEvent, ctx.PremiumPct,
	)
}

// eventLabel renders an event type for narrative text.
func eventLabel(event *domain.MarketEvent) string {
	if event == nil {
		return "Event"
	}

	switch event.EventType {
	case domain.EventEarnings:
		return "Earnings"
	case domain.EventFDAApproval:
		return "FDA decision"
	case domain.EventMerger:
		return "Merger event"
	case domain.EventProductLaunch:
		return "Product launch"
	case domain.EventRegulatory:
		return "Regulatory decision"
	case domain.EventEconomicData:
		return "Economic data release"
	default:
		return "Market event"
	}
}
