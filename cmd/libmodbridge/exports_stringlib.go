package main

/*
#include <stddef.h>
#include <stdint.h>
*/
import "C"

import "unsafe"

//export stringlib_processor_new
func stringlib_processor_new() C.uintptr_t {
	return fromHandle(rt.Strings.ProcessorNew())
}

//export stringlib_processor_reverse
func stringlib_processor_reverse(h C.uintptr_t, s *C.char) *C.char {
	return (*C.char)(rt.Strings.ProcessorReverse(toHandle(h), unsafe.Pointer(s)))
}

//export stringlib_processor_concat
func stringlib_processor_concat(h C.uintptr_t, strs **C.char, count C.size_t, separator *C.char) *C.char {
	out := rt.Strings.ProcessorConcat(toHandle(h), unsafe.Pointer(strs), uint(count), unsafe.Pointer(separator))
	return (*C.char)(out)
}

//export stringlib_processor_to_upper
func stringlib_processor_to_upper(h C.uintptr_t, s *C.char) *C.char {
	return (*C.char)(rt.Strings.ProcessorToUpper(toHandle(h), unsafe.Pointer(s)))
}

//export stringlib_processor_word_count
func stringlib_processor_word_count(h C.uintptr_t, s *C.char) C.size_t {
	return C.size_t(rt.Strings.ProcessorWordCount(toHandle(h), unsafe.Pointer(s)))
}

//export stringlib_processor_valid
func stringlib_processor_valid(h C.uintptr_t) C.int32_t {
	return fromBool(rt.Strings.ProcessorValid(toHandle(h)))
}

//export stringlib_processor_free
func stringlib_processor_free(h C.uintptr_t) {
	rt.Strings.ProcessorFree(toHandle(h))
}

//export stringlib_free_string
func stringlib_free_string(s *C.char) {
	rt.Strings.FreeString(unsafe.Pointer(s))
}
