package predicate

import (
	"strconv"
	"strings"
)

// Func is the signature shared by every property predicate.
type Func func(n int64) bool

// Even reports whether n is divisible by two.
func Even(n int64) bool {
	return n%2 == 0
}

// Odd reports whether n is not divisible by two.
func Odd(n int64) bool {
	return n%2 != 0
}

// Buzz reports whether n is divisible by 7 or ends with the digit 7.
func Buzz(n int64) bool {
	return n%7 == 0 || n%10 == 7
}

// Duck reports whether the decimal form of n contains a zero digit.
func Duck(n int64) bool {
	return strings.ContainsRune(strconv.FormatInt(n, 10), '0')
}

// Palindromic reports whether n reads the same in both directions.
func Palindromic(n int64) bool {
	s := strconv.FormatInt(n, 10)
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}

// Gapful reports whether n has at least three digits and is divisible by
// the number formed from its first and last digits.
func Gapful(n int64) bool {
	ds := digits(n)
	if len(ds) < 3 {
		return false
	}
	divisor := int64(ds[0]*10 + ds[len(ds)-1])
	return n%divisor == 0
}

// Spy reports whether the sum of the digits of n equals their product.
func Spy(n int64) bool {
	var sum, product uint64 = 0, 1
	for _, d := range digits(n) {
		sum += uint64(d)
		product *= uint64(d)
	}
	return sum == product
}

// Square reports whether n is a perfect square.
func Square(n int64) bool {
	if n < 0 {
		return false
	}
	return isPerfectSquare(uint64(n))
}

// Sunny reports whether n+1 is a perfect square.
func Sunny(n int64) bool {
	if n < 0 {
		return false
	}
	return isPerfectSquare(uint64(n) + 1)
}

func isPerfectSquare(n uint64) bool {
	r := isqrt(n)
	return r*r == n
}

// Jumping reports whether every pair of adjacent digits of n differs by
// exactly one. Single-digit numbers are jumping.
func Jumping(n int64) bool {
	ds := digits(n)
	for i := 1; i < len(ds); i++ {
		diff := ds[i] - ds[i-1]
		if diff != 1 && diff != -1 {
			return false
		}
	}
	return true
}

// Happy reports whether repeatedly replacing n with the sum of the squares
// of its digits reaches 1. The walk stops at the first repeated value.
func Happy(n int64) bool {
	seen := make(map[int64]struct{})
	for n != 1 {
		if _, ok := seen[n]; ok {
			return false
		}
		seen[n] = struct{}{}
		n = sumOfSquaredDigits(n)
	}
	return true
}

// Sad is the negation of Happy.
func Sad(n int64) bool {
	return !Happy(n)
}
