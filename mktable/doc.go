/*
Command mktable converts a results file from procdrift to a LaTeX table
suitable for a pointing error memo.

Usage

  mktable [options] <results file>

Command line options:

  -v    use LWA-SV instead of LWA1
  -n    use LWA-NA instead of LWA1
  -o    use OVRO-LWA instead of LWA1

The station choice sets the observer location used to recover the
azimuth and elevation of each observation.
*/
package main
