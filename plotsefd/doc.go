// Command plotsefd plots the SEFD estimates in a results file against
// zenith angle, one color per source.
package main
