package main

/*
#include <stdlib.h>
*/
import "C"

import "context"

//export uast_vst_compile
func uast_vst_compile(vstPath *C.char, schemeID *C.char) C.int {
	return checkError(compileVST(context.Background(), C.GoString(vstPath), C.GoString(schemeID)))
}

//export uast_version
func uast_version() *C.char {
	return C.CString(version)
}
