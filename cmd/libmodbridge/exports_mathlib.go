package main

/*
#include <stdint.h>
*/
import "C"

//export mathlib_calculator_new
func mathlib_calculator_new() C.uintptr_t {
	return fromHandle(rt.Math.CalculatorNew())
}

//export mathlib_calculator_add
func mathlib_calculator_add(h C.uintptr_t, a, b C.int32_t) C.int32_t {
	return C.int32_t(rt.Math.CalculatorAdd(toHandle(h), int32(a), int32(b)))
}

//export mathlib_calculator_multiply
func mathlib_calculator_multiply(h C.uintptr_t, a, b C.int32_t) C.int32_t {
	return C.int32_t(rt.Math.CalculatorMultiply(toHandle(h), int32(a), int32(b)))
}

//export mathlib_calculator_factorial
func mathlib_calculator_factorial(h C.uintptr_t, n C.int32_t) C.int64_t {
	return C.int64_t(rt.Math.CalculatorFactorial(toHandle(h), int32(n)))
}

//export mathlib_calculator_max_of_three
func mathlib_calculator_max_of_three(h C.uintptr_t, a, b, c C.int32_t) C.int32_t {
	return C.int32_t(rt.Math.CalculatorMaxOfThree(toHandle(h), int32(a), int32(b), int32(c)))
}

//export mathlib_calculator_valid
func mathlib_calculator_valid(h C.uintptr_t) C.int32_t {
	return fromBool(rt.Math.CalculatorValid(toHandle(h)))
}

//export mathlib_calculator_free
func mathlib_calculator_free(h C.uintptr_t) {
	rt.Math.CalculatorFree(toHandle(h))
}
