// Command plotfwhm plots the beam FWHM estimates in a results file
// against zenith angle.  Records without a FWHM estimate are skipped.
package main
