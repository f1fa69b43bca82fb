// Package seed turns a coloring into the 0/1 seed vectors of a compressed
// derivative evaluation: seed c has 1.0 exactly at the DOFs of color c, so a
// single directional probe J·seed_c recovers every column of that color.
//
// Vectors returns the seeds as dense []float64 slices; Matrix returns the
// same data as the N×K gonum matrix S = [seed_0 … seed_{K-1}], ready for
// products such as J·S. VerifyPartition checks that a set of seeds partitions
// the DOFs consistently with a coloring.
package seed
