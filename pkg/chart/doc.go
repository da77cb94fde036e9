// Package chart defines the chart descriptions accepted by chartpress and
// validates incoming requests against them.
//
// # Kinds
//
// Four chart kinds are supported, identified on the wire by the chartType
// field:
//
//   - radar: labelled axes with one polygon per dataset
//   - radialBar: a half-doughnut gauge with a category badge ("gauge" is
//     accepted as a synonym)
//   - bar: categorical bars, vertical or horizontal
//   - pie: categorical slices
//
// # Parsing
//
// [Parse] resolves the kind, decodes chartData into the matching variant of
// the closed [Description] union and validates it:
//
//	desc, err := chart.Parse("bar", raw)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // report errors.UserMessage(err) to the client
//	}
//
// Validation is pure and complete: a description that passes can be mapped
// and rendered without further input checks. Failures are *errors.Error
// values carrying the offending field, never panics.
package chart
