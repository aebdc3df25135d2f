// Package chart renders drop-chance curves as PNG images.
//
// A chart shows the cumulative success curve over 1..max(5*Odds, Trials),
// two dashed guide lines locating the caller's trial count on the curve, an
// annotation with the rounded percentage at the y-axis, and a one-line
// caption stamped under the plot.
//
// RenderTemp writes to a scoped temporary file. Callers own the returned
// Artifact and must Remove it on every exit path once it has been sent.
package chart
