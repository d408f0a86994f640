package bezier

import "fmt"

// Binomial returns the binomial coefficient C(n, k), the number of ways of
// choosing k items out of n.
//
// The coefficient is computed with the multiplicative method, alternately
// multiplying by n-k+1 through n and dividing by 1 through k, so that the
// intermediate values never exceed the result. This keeps coefficients of
// curves with hundreds of control points finite.
//
// Binomial panics unless 0 ≤ k ≤ n. Curves only ever ask for coefficients of
// their own degree, so invalid arguments indicate a bug in the caller.
func Binomial(n, k int) float64 {
	if n < 0 || k < 0 || k > n {
		panic(fmt.Sprintf("bezier: invalid binomial coefficient C(%d, %d)", n, k))
	}
	k = min(k, n-k)
	coeff := 1.0
	for i := 1; i <= k; i++ {
		// coeff is C(n-k+i-1, i-1), so the division is exact while the
		// product fits in a float64 mantissa.
		coeff = coeff * float64(n-k+i) / float64(i)
	}
	return coeff
}
