package http

import (
	"github.com/MMN3003/swapr-metrics/src/pricing"
	"github.com/MMN3003/swapr-metrics/src/supply/domain"
)

// ResponseFromDomain echoes every excluded balance under its label next to the result.
func ResponseFromDomain(r *domain.Report) map[string]string {
	out := make(map[string]string, len(r.Excluded)+1)
	for _, b := range r.Excluded {
		out[b.Label] = pricing.FormatUnits(b.Amount, r.Decimals)
	}
	out["circulatingSupply"] = pricing.FormatUnits(r.CirculatingSupply, r.Decimals)
	return out
}
