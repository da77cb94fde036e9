// Package api serves the chart pipeline over HTTP.
//
// Routes:
//
//	GET  /                     service index
//	GET  /health               liveness and build information
//	POST /api/chart-image      chart → image/png
//	POST /api/chart-pdf        chart → application/pdf attachment
//	POST /api/radar-chart-pdf  radar chart → PDF (chartType is ignored)
//
// Every error is returned as JSON with an "error" message and a
// machine-readable "code". Every response carries an X-Request-ID header.
package api
