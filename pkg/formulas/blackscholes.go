package formulas

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// stdNormal is the standard normal distribution used for d1/d2 probabilities.
var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// OptionQuote holds the theoretical price and first-order greeks of a
// European option.
type OptionQuote struct {
	Price float64 `json:"price"`
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
}

// BlackScholes prices a European option.
//
// Args:
//
//	spot: current price of the underlying
//	strike: strike price
//	timeToExpiry: time to expiration in years
//	riskFreeRate: annualized risk-free rate as a decimal
//	volatility: annualized volatility as a decimal
//	isCall: true for a call, false for a put
//
// Degenerate inputs (expired contract or zero volatility) collapse to
// discounted intrinsic value so callers never receive NaN.
func BlackScholes(spot, strike, timeToExpiry, riskFreeRate, volatility float64, isCall bool) OptionQuote {
	if timeToExpiry <= 0 || volatility <= 0 || spot <= 0 || strike <= 0 {
		return OptionQuote{Price: intrinsicValue(spot, strike, timeToExpiry, riskFreeRate, isCall)}
	}

	sqrtT := math.Sqrt(timeToExpiry)
	d1 := (math.Log(spot/strike) + (riskFreeRate+0.5*volatility*volatility)*timeToExpiry) / (volatility * sqrtT)
	d2 := d1 - volatility*sqrtT

	discount := math.Exp(-riskFreeRate * timeToExpiry)
	pdfD1 := stdNormal.Prob(d1)

	quote := OptionQuote{
		Gamma: pdfD1 / (spot * volatility * sqrtT),
		Vega:  spot * sqrtT * pdfD1,
	}

	if isCall {
		quote.Price = spot*stdNormal.CDF(d1) - strike*discount*stdNormal.CDF(d2)
		quote.Delta = stdNormal.CDF(d1)
		quote.Theta = -spot*pdfD1*volatility/(2*sqrtT) - riskFreeRate*strike*discount*stdNormal.CDF(d2)
	} else {
		quote.Price = strike*discount*stdNormal.CDF(-d2) - spot*stdNormal.CDF(-d1)
		quote.Delta = stdNormal.CDF(d1) - 1
		quote.Theta = -spot*pdfD1*volatility/(2*sqrtT) + riskFreeRate*strike*discount*stdNormal.CDF(-d2)
	}

	return quote
}

// BlackScholesPrice returns only the theoretical price.
func BlackScholesPrice(spot, strike, timeToExpiry, riskFreeRate, volatility float64, isCall bool) float64 {
	return BlackScholes(spot, strike, timeToExpiry, riskFreeRate, volatility, isCall).Price
}

func intrinsicValue(spot, strike, timeToExpiry, riskFreeRate float64, isCall bool) float64 {
	discount := 1.0
	if timeToExpiry > 0 {
		discount = math.Exp(-riskFreeRate * timeToExpiry)
	}

	var value float64
	if isCall {
		value = spot - strike*discount
	} else {
		value = strike*discount - spot
	}

	return math.Max(0, value)
}
