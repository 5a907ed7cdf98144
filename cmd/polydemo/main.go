// Polydemo prints the result of every polynomial operation on a pair of
// sample polynomials.
//
// Usage:
//
//	# Run with the built-in samples p1 = 3x^2 + 2x + 1 and p2 = x^2 + x
//	polydemo
//
//	# Read samples from a YAML file
//	polydemo --config samples.yaml
//
//	# Show debug logs on stderr
//	polydemo --log-level debug
package main

func main() {
	Execute()
}
