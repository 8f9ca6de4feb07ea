package http

import "github.com/MMN3003/swapr-metrics/src/fees/domain"

const usdPlaces = 3

// ResponseFromDomain renders `<chainKey>USD` for every chain plus `totalUSD`.
func ResponseFromDomain(r *domain.Report) map[string]string {
	out := make(map[string]string, len(r.Chains)+1)
	for _, c := range r.Chains {
		out[c.Key+"USD"] = c.USD.Fixed(usdPlaces)
	}
	out["totalUSD"] = r.Total.Fixed(usdPlaces)
	return out
}
