// Public domain.

/*
Package pointing holds a collection of commands for planning and analyzing
pointing and sensitivity calibration runs on LWA-style radio telescopes.

Contents

  Overview
  Planning commands
  Analysis commands
  Results file format

Overview

Calibration proceeds in two phases.  In the planning phase a bright
calibrator is picked and schedule description files (SDFs) are generated for
drift scans of the source near transit.  In the analysis phase the recorded
waterfall files are fit for the pointing offset, the system equivalent flux
density (SEFD), and the beam width (FWHM), and the accumulated measurements
are fit for a rigid rotation of the pointing model.

Each command is a standalone program.  Commands communicate only through
files: the SDFs consumed by the station control system, the HDF5 waterfall
files produced by the recorder, and the plain text results files described
below.

Planning commands

  obstimes   rise, transit, and set times of a calibrator at a ladder of
             elevations for a given UTC day
  gendrift   SDFs for a drift scan run: the target beam plus beams offset
             one degree north and south in declination
  genweave   a single basket weave SDF stepping the beam across the target
             in right ascension and declination

Analysis commands

  procdrift  fit drift scan waterfalls for pointing offset, SEFD, and FWHM
             and emit one results line per tuning
  procweave  fit the two coordinate cuts of a basket weave recording for
             the same quantities
  fitaxis    fit accumulated results with a rotation about an axis and
             report pointing statistics before and after the fit
  mktable    render a results file as a LaTeX table fragment
  plotsefd   plot SEFD estimates against zenith angle
  plotfwhm   plot FWHM estimates against zenith angle
  plotsky    plot sky coverage of the observations

Results file format

A results file holds one whitespace delimited record per line:

  Source YYYY/MM/DD HH:MM:SS MHz    Z          errRA      errDec      SEFD      FWHM

Source is the calibrator name, the timestamp is the UTC transit midpoint,
MHz is the tuning center frequency, Z is the zenith angle, errRA is the
right ascension error in hours of time, errDec is the declination error,
SEFD is in Jy, and FWHM is in degrees.  Angles are colon separated
sexagesimal.  Lines beginning with # and header lines are ignored on read.
Older files lacking the MHz or FWHM columns are accepted; the missing
values read as -1.
*/
package pointing
