// Package wqi computes the Water Quality Index (WQI, "IQA" in the Brazilian
// CETESB methodology) from nine water-sample parameters.
//
// # Method
//
// Each measured parameter is mapped to a quality value q in roughly [0, 100]
// by a piecewise empirical regression curve. The index is the weighted
// geometric mean of the nine values:
//
//	WQI = q_od^w_od · q_cf^w_cf · q_ph^w_ph · q_dbo^w_dbo · q_nt^w_nt ·
//	      q_ft^w_ft · q_temp^w_temp · q_tb^w_tb · q_st^w_st
//
// Dissolved oxygen enters as percent saturation, derived from the measured
// concentration and the theoretical saturation at the sample's temperature
// and altitude. Fecal coliforms enter as log10 of the count.
//
// The temperature term always uses a fixed quality value of 94.0. The sample
// temperature only affects the oxygen saturation formula. This mirrors the
// reference methodology as implemented and is kept on purpose.
//
// # Curve bands
//
// Bands are lower-exclusive and upper-inclusive: (lower, upper]. A value that
// falls outside every band takes the curve's flat fallback.
//
//	od (% saturation)  (0,50] (50,85] (85,100] (100,140]          fallback 50
//	cf (log10 count)   (0,1] (1,5]                                 fallback 3
//	ph                 (0,2] (2,4] (4,6.2] (6.2,7] (7,8] (8,8.5]
//	                   (8.5,9] (9,10] (10,12]                      fallback 3
//	dbo (mg/L)         (0,5] (5,15] (15,30]                        fallback 2
//	nt (mg/L)          (0,10] (10,60] (60,100]                     fallback 1
//	ft (mg/L)          (0,1] (1,5] (5,10]                          fallback 5
//	tb (NTU)           (0,25] (25,100]                             fallback 5
//	st (mg/L)          (0,150] (150,500]                           fallback 32
//
// # Classification
//
//	<= 19 very bad | <= 36 poor | <= 51 fair | <= 79 good | > 79 excellent
//
// The class is taken from the unrounded index, so a value of 19.004 reports
// Index 19.00 with class poor. Use Classify on a rounded value to classify
// what is displayed.
//
// Every function in this package is pure and safe for concurrent use.
package wqi
