package main

/*
#include <stdint.h>
*/
import "C"

import "unsafe"

//export common_logger_new
func common_logger_new(prefix *C.char) C.uintptr_t {
	return fromHandle(rt.Common.LoggerNew(unsafe.Pointer(prefix)))
}

//export common_logger_log
func common_logger_log(h C.uintptr_t, message *C.char) {
	rt.Common.LoggerLog(toHandle(h), unsafe.Pointer(message))
}

//export common_logger_valid
func common_logger_valid(h C.uintptr_t) C.int32_t {
	return fromBool(rt.Common.LoggerValid(toHandle(h)))
}

//export common_logger_free
func common_logger_free(h C.uintptr_t) {
	rt.Common.LoggerFree(toHandle(h))
}

//export common_to_upper
func common_to_upper(s *C.char) *C.char {
	return (*C.char)(rt.Common.ToUpper(unsafe.Pointer(s)))
}

//export common_max
func common_max(a, b C.int32_t) C.int32_t {
	return C.int32_t(rt.Common.Max(int32(a), int32(b)))
}

//export common_min
func common_min(a, b C.int32_t) C.int32_t {
	return C.int32_t(rt.Common.Min(int32(a), int32(b)))
}

//export common_free_string
func common_free_string(s *C.char) {
	rt.Common.FreeString(unsafe.Pointer(s))
}
