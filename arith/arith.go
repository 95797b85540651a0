// Package arith implements integer arithmetic with bitwise operations only.
package arith

// Adder returns a + b, modulo 2^32, computed by a ripple-carry adder.
func Adder(a, b uint32) uint32 {
	var res, carry uint32
	for i := 0; i < 32; i++ {
		x := (a >> i) & 1
		y := (b >> i) & 1
		res |= (x ^ y ^ carry) << i
		carry = (x & y) | (y & carry) | (x & carry)
	}
	return res
}

// Subtractor returns a - b, modulo 2^32.
func Subtractor(a, b uint32) uint32 {
	return ^Adder(^a, b)
}

// Multiplier returns a * b, modulo 2^32, by shifting and adding.
func Multiplier(a, b uint32) uint32 {
	var res uint32
	for i := 0; i < 32; i++ {
		if (a>>i)&1 == 1 {
			res = Adder(res, b<<i)
		}
	}
	return res
}

// GrayCode returns the reflected binary code of a.
// Codes of consecutive integers differ by exactly one bit.
func GrayCode(a uint32) uint32 {
	return a ^ (a >> 1)
}
