// Package riskfilter drops every case that contains any row with
// PK+delta>=theta, then re-estimates PK ("New PK") on the surviving
// rows, reusing annotate's per-group KDE machinery over the surviving
// rows' existing NrmRelTime/Prec values.
package riskfilter
