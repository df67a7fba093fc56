package q64fixed

import "fmt"

// assertf panics if cond is false. It exists for genuine precondition
// breaches only (div192by128's requirement of a nonzero divisor high word)
// -- never for ordinary saturating/wrapping arithmetic, which this
// package never treats as an error. Go has no separate release build that
// compiles assertions out, so unlike the R128_ASSERT macro this one always
// runs.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
