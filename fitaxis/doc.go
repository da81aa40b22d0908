/*
Command fitaxis fits a pointing correction to drift scan results.

Usage

  fitaxis [options] <results file> [<results file> ...]

Command line options:

  -v    use LWA-SV instead of LWA1
  -n    use LWA-NA instead of LWA1
  -o    use OVRO-LWA instead of LWA1
  -p    before/after plot file prefix, empty to disable

Method

Each results line gives the right ascension and declination offsets that
put the beam on a calibrator at a known time.  From these the command
reconstructs where each source truly was and where the station thought it
was pointing, then searches for the rigid rotation, an axis direction
through the station zenith frame plus a rotation angle about it, that
minimizes the RMS angular separation between the two sets.  Statistics
of the pointing error before and after applying the correction are
printed per observing frequency, and a before/after figure is written
beside them.

The fit refuses measurement sets that cannot constrain a rotation, fewer
than three distinct pointings or pointings all along one direction.
*/
package main
