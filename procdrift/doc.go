/*
Command procdrift reduces the waterfall files of a drift scan set to a
pointing offset, SEFD and FWHM estimate per tuning.

Usage

  procdrift [options] file.hdf5 [file.hdf5 ...]

Command line options:

  -v    assume LWA-SV when the files do not name their station
  -n    assume LWA-NA when the files do not name their station
  -o    assume OVRO-LWA when the files do not name their station
  -p    plot file prefix (default "drift"), empty to disable

Method

Each waterfall is summed over the inner three quarters of the band,
despiked, normalized and fit with a Gaussian plus baseline.  The scan on
the calibrator gives the transit time offset, which is the right
ascension pointing error, and the SEFD estimate from the ratio of the
baseline to the Gaussian amplitude.  The north and south scans bracket
the source in declination; the relative powers of the three, fit against
a fixed width Gaussian, give the declination pointing error.

A report per scan is printed as the fits complete, followed by the
results lines for the set; the results header goes to standard error so
the lines can be collected into a results file for fitaxis.
*/
package main
