package main

/**
 * gouast - A Sanskrit transliteration library
 * Copyright Subin Siby, 2021
 * Licensed under AGPL-3.0-only
 */

import (
	"github.com/varnamproject/gouast/internal/log"
)

func main() {
	if err := newRoot().Execute(); err != nil {
		log.Exitf("%v", err)
	}
	log.Flush()
}
