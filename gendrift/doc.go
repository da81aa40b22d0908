/*
Command gendrift generates the session definition files for a drift scan
pointing and sensitivity check.

Usage

  gendrift [options] <source name> YYYY/MM/DD HH:MM:SS[.SS]

Command line options:

  -v    generate for LWA-SV instead of LWA1
  -n    generate for LWA-NA instead of LWA1
  -o    generate for OVRO-LWA instead of LWA1
  -l    list valid sources and exit
  -d    observation length in seconds (default 7200)
  -t    generate the target SDF only
  -s    comma separated session IDs (default 1001,1002,1003)
  -f    comma separated tuning frequencies in MHz (default 37.9,74.03)
  -u    UCF username for automatic data copy

Method

The scans are centered on the given UTC transit time, which obstimes can
provide.  Three fixed azimuth/elevation pointings are generated: the
target itself plus pointings offset one degree north and one degree south
in declination.  On LWA1 the three go out as separate SDFs on beams 2, 3
and 4; on LWA-SV they share beam 1 and are stepped one sidereal day
apart.  The resulting waterfall files are reduced with procdrift.
*/
package main
