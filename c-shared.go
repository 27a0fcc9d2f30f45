package main

/* For c-shared library */

/*
#include <stdlib.h>

#define UAST_SUCCESS 0
#define UAST_ERROR 1
*/
import "C"
import (
	"unsafe"

	"github.com/varnamproject/gouast/gouast"
)

// Note that C.CString uses malloc(). Strings returned from here should be
// freed with uast_free by the caller.

func checkError(err error) C.int {
	setLastError(err)
	if err != nil {
		return C.UAST_ERROR
	}
	return C.UAST_SUCCESS
}

//export uast_to_devanagari
func uast_to_devanagari(word *C.char) *C.char {
	return C.CString(gouast.RomanizedToDevanagari(C.GoString(word)))
}

//export devanagari_to_iast
func devanagari_to_iast(word *C.char) *C.char {
	return C.CString(gouast.DevanagariToIAST(C.GoString(word)))
}

//export devanagari_to_gujarati
func devanagari_to_gujarati(word *C.char) *C.char {
	return C.CString(gouast.DevanagariToGujarati(C.GoString(word)))
}

//export slp_to_iast
func slp_to_iast(word *C.char) *C.char {
	return C.CString(gouast.SLPToIAST(C.GoString(word)))
}

//export uast_convert
func uast_convert(mode *C.char, text *C.char, output **C.char) C.int {
	result, err := convertText(C.GoString(mode), C.GoString(text))
	if err != nil {
		return checkError(err)
	}

	*output = C.CString(result)
	return checkError(nil)
}

//export uast_get_last_error
func uast_get_last_error() *C.char {
	return C.CString(getLastError())
}

//export uast_free
func uast_free(ptr *C.char) {
	C.free(unsafe.Pointer(ptr))
}
