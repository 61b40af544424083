package formulas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlackScholes_KnownValues(t *testing.T) {
	tests := []struct {
		name       string
		spot       float64
		strike     float64
		timeYears  float64
		rate       float64
		volatility float64
		isCall     bool
		wantPrice  float64
		tolerance  float64
	}{
		{
			name:       "ATM call one year",
			spot:       100, strike: 100, timeYears: 1.0, rate: 0.05, volatility: 0.20,
			isCall:    true,
			wantPrice: 10.4506,
			tolerance: 0.001,
		},
		{
			name:       "ATM put one year",
			spot:       100, strike: 100, timeYears: 1.0, rate: 0.05, volatility: 0.20,
			isCall:    false,
			wantPrice: 5.5735,
			tolerance: 0.001,
		},
		{
			name:       "OTM call short dated",
			spot:       50, strike: 55, timeYears: 0.25, rate: 0.03, volatility: 0.30,
			isCall:    true,
			wantPrice: 1.0679,
			tolerance: 0.005,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := BlackScholes(tt.spot, tt.strike, tt.timeYears, tt.rate, tt.volatility, tt.isCall)
			assert.InDelta(t, tt.wantPrice, quote.Price, tt.tolerance)
		})
	}
}

func TestBlackScholes_PutCallParity(t *testing.T) {
	spot, strike, timeYears, rate, vol := 100.0, 95.0, 0.5, 0.04, 0.25

	call := BlackScholesPrice(spot, strike, timeYears, rate, vol, true)
	put := BlackScholesPrice(spot, strike, timeYears, rate, vol, false)

	// C - P = S - K*e^(-rT)
	parity := spot - strike*math.Exp(-rate*timeYears)
	assert.InDelta(t, parity, call-put, 1e-9)
}

func TestBlackScholes_HigherVolatilityRaisesPrice(t *testing.T) {
	low := BlackScholesPrice(100, 100, 0.5, 0.05, 0.20, true)
	high := BlackScholesPrice(100, 100, 0.5, 0.05, 0.40, true)

	assert.Greater(t, high, low)
}

func TestBlackScholes_DegenerateInputs(t *testing.T) {
	tests := []struct {
		name       string
		spot       float64
		strike     float64
		timeYears  float64
		volatility float64
		isCall     bool
		wantPrice  float64
	}{
		{name: "expired ITM call", spot: 110, strike: 100, timeYears: 0, volatility: 0.2, isCall: true, wantPrice: 10},
		{name: "expired OTM call", spot: 90, strike: 100, timeYears: 0, volatility: 0.2, isCall: true, wantPrice: 0},
		{name: "expired ITM put", spot: 90, strike: 100, timeYears: 0, volatility: 0.2, isCall: false, wantPrice: 10},
		{name: "zero volatility", spot: 90, strike: 100, timeYears: 0.5, volatility: 0, isCall: true, wantPrice: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := BlackScholes(tt.spot, tt.strike, tt.timeYears, 0.0, tt.volatility, tt.isCall)
			assert.InDelta(t, tt.wantPrice, quote.Price, 1e-9)
			assert.False(t, math.IsNaN(quote.Price))
		})
	}
}

func TestBlackScholes_GreeksSigns(t *testing.T) {
	call := BlackScholes(100, 100, 1.0, 0.05, 0.2, true)
	put := BlackScholes(100, 100, 1.0, 0.05, 0.2, false)

	assert.Greater(t, call.Delta, 0.0)
	assert.Less(t, put.Delta, 0.0)
	assert.Greater(t, call.Gamma, 0.0)
	assert.Greater(t, call.Vega, 0.0)
	assert.Less(t, call.Theta, 0.0)
}
