/*
Command procweave reduces a basket weave waterfall file to a pointing
offset, SEFD and FWHM estimate per tuning.

Usage

  procweave [options] file.hdf5 [file.hdf5 ...]

Command line options:

  -v    assume LWA-SV when the files do not name their station
  -n    assume LWA-NA when the files do not name their station
  -o    assume OVRO-LWA when the files do not name their station
  -p    cut plot file prefix (default "weave"), empty to disable

Method

The recording steps across the source in declination and then in right
ascension, returning to the source between offsets.  The integrations of
each step are collapsed to a robust mean power, the interleaved on
source steps are interpolated in time to divide out ionospheric power
changes, and each cut is fit with a free width Gaussian plus baseline.
The fitted centers give the pointing errors, the widths the FWHM, and
the baseline to amplitude ratios the SEFD, with the two cuts averaged
for the results line.

Results lines go to standard output and the results header to standard
error, as with procdrift.
*/
package main
