// Package cmps benchmarks the Ranges trees against ordered maps answering the same range sums
// by scanning.
package cmps
