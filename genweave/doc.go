/*
Command genweave generates a basket weave session definition file for a
pointing check.

Usage

  genweave [options] <source name> YYYY/MM/DD HH:MM:SS[.SS]

Command line options:

  -v    generate for LWA-SV instead of LWA1
  -n    generate for LWA-NA instead of LWA1
  -o    generate for OVRO-LWA instead of LWA1
  -l    list valid sources and exit
  -s    session ID (default 1001)

Method

The observation steps the beam across the source in declination and then
in right ascension, minus four to plus four degrees in half degree
increments, with each offset pointing interleaved with a reference
pointing back on the source.  The right ascension offsets are scaled by
the cosine of the declination so the two cuts subtend the same angle on
the sky.  The whole sequence is centered on the given UTC transit time,
and the resulting waterfall file is reduced with procweave.
*/
package main
