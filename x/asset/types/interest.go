package types

import (
	"fmt"

	"cosmossdk.io/math"
)

const (
	// SecondsPerYear is the period a basis-point rate applies to.
	SecondsPerYear int64 = 60 * 60 * 24 * 365

	// MaxInterestRate bounds the absolute value of a rate in basis points.
	MaxInterestRate int16 = 10_000

	expTerms = 24
)

var basisPoints = math.LegacyNewDec(10_000)

// ValidateRate checks that rate is within the supported basis point range.
func ValidateRate(rate int16) error {
	if rate > MaxInterestRate || rate < -MaxInterestRate {
		return fmt.Errorf("rate %d outside [-%d, %d] basis points", rate, MaxInterestRate, MaxInterestRate)
	}
	return nil
}

// UpdateRate switches the mint to a new rate at now. The average rate
// accrued so far is folded into PreUpdateAverageRate so that scaling stays
// continuous across the change.
func (c *InterestBearingConfig) UpdateRate(rate int16, now int64) {
	total := now - c.InitializationTimestamp
	if total > 0 {
		pre := c.LastUpdateTimestamp - c.InitializationTimestamp
		cur := now - c.LastUpdateTimestamp
		weighted := int64(c.PreUpdateAverageRate)*pre + int64(c.CurrentRate)*cur
		c.PreUpdateAverageRate = int16(weighted / total)
	} else {
		c.PreUpdateAverageRate = rate
	}
	c.CurrentRate = rate
	c.LastUpdateTimestamp = now
}

// scale returns the continuous compounding factor at now.
func (c InterestBearingConfig) scale(now int64) math.LegacyDec {
	pre := c.LastUpdateTimestamp - c.InitializationTimestamp
	cur := now - c.LastUpdateTimestamp
	if cur < 0 {
		cur = 0
	}
	return exp(exponent(c.PreUpdateAverageRate, pre)).Mul(exp(exponent(c.CurrentRate, cur)))
}

func exponent(rate int16, seconds int64) math.LegacyDec {
	return math.LegacyNewDec(int64(rate)).
		MulInt64(seconds).
		Quo(basisPoints).
		QuoInt64(SecondsPerYear)
}

// exp evaluates e^x by its Taylor series. Rates are bounded so x stays small.
func exp(x math.LegacyDec) math.LegacyDec {
	sum := math.LegacyOneDec()
	term := math.LegacyOneDec()
	for n := int64(1); n <= expTerms; n++ {
		term = term.Mul(x).QuoInt64(n)
		if term.IsZero() {
			break
		}
		sum = sum.Add(term)
	}
	return sum
}

// AmountToUIAmount converts a raw amount to its display value at now,
// including accrued interest.
func (m Mint) AmountToUIAmount(amount uint64, now int64) math.LegacyDec {
	scaled := math.LegacyNewDecFromInt(math.NewIntFromUint64(amount)).
		Mul(m.InterestBearing.scale(now))
	if m.Decimals > 0 {
		scaled = scaled.Quo(math.LegacyNewDec(10).Power(uint64(m.Decimals)))
	}
	return scaled
}
