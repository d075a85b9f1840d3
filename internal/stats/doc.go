// Package stats computes the descriptive statistics of a numeric column:
// mean, standard deviation, bounds, plotting-position quartiles, the IQR
// outlier fences and the mean/median skew distance.
//
// Non-finite values are not filtered. NaN and ±Inf propagate through every
// computation under IEEE-754 rules, and sorting places NaN before every
// other value, so a single NaN makes Min (and usually Q1) NaN.
package stats
