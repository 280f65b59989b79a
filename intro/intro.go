// Package intro holds the introductory exercises.
package intro

import (
	"cmp"
	"errors"
	"math"
	"strconv"

	"github.com/samber/lo"
)

// ErrNegativeFactorial is returned by Factorial for negative input.
var ErrNegativeFactorial = errors.New("factorial is not defined for negative numbers")

// Max returns the larger of a and b, or a if they are equal.
func Max[T cmp.Ordered](a, b T) T {
	if b > a {
		return b
	}
	return a
}

// FizzBuzz returns "Fizz" for multiples of 3, "Buzz" for multiples of 5, "FizzBuzz" for
// multiples of both and the number itself otherwise.
func FizzBuzz(n int) string {
	switch {
	case n%15 == 0:
		return "FizzBuzz"
	case n%3 == 0:
		return "Fizz"
	case n%5 == 0:
		return "Buzz"
	default:
		return strconv.Itoa(n)
	}
}

// Average returns the arithmetic mean of values, or NaN if there are none.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return lo.Sum(values) / float64(len(values))
}

// Factorial returns n!.
func Factorial(n int) (int, error) {
	if n < 0 {
		return 0, ErrNegativeFactorial
	}
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result, nil
}
