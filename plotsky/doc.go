// Command plotsky plots the sky coverage of the observations in a
// results file, an orthographic projection of the local sky with one
// marker per record.
package main
