package main

/**
 * gouast - A Sanskrit transliteration library
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

// Built with -buildmode=c-shared. The exported functions are in c-shared.go
func main() {}

// Set with -ldflags "-X main.version=..."
var version = "dev"
