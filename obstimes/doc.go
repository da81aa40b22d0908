/*
Command obstimes lists the times a calibrator source is at a ladder of
elevations for a given UTC day.

Usage

  obstimes [options] <source name> YYYY/MM/DD

Command line options:

  -v    compute for LWA-SV instead of LWA1
  -n    compute for LWA-NA instead of LWA1
  -o    compute for OVRO-LWA instead of LWA1
  -l    list valid sources and exit
  -e    comma separated list of additional elevations in degrees

Output

For each elevation of the ladder (30 through 90 degrees by default, plus
any -e additions) the rise and set times are listed along with the azimuth
at the crossing, and the transit time and elevation are listed between
them.  Elevations the source never reaches are silently skipped.  The
times help schedule drift scan runs with gendrift at a chosen zenith
angle.
*/
package main
