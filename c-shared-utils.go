package main

import (
	"context"
	"strings"
	"sync"

	"github.com/varnamproject/gouast/gouast"
	"github.com/varnamproject/gouast/vst"
)

var lastError error
var lastErrorMutex = sync.RWMutex{}

func setLastError(err error) {
	lastErrorMutex.Lock()
	lastError = err
	lastErrorMutex.Unlock()
}

func getLastError() string {
	lastErrorMutex.RLock()
	defer lastErrorMutex.RUnlock()

	if lastError == nil {
		return ""
	}
	return lastError.Error()
}

// convertText converts every line of text, keeping the line breaks
func convertText(mode string, text string) (string, error) {
	conv, err := gouast.ConverterForMode(mode)
	if err != nil {
		return "", err
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = gouast.ConvertLine(conv, line)
	}

	return strings.Join(lines, "\n"), nil
}

func compileVST(ctx context.Context, vstPath string, schemeID string) error {
	file, err := vst.Open(vstPath)
	if err != nil {
		return err
	}
	defer file.Close()

	sd := vst.DefaultSchemeDetails()
	if schemeID != "" {
		sd.Identifier = schemeID
	}

	return file.Compile(ctx, gouast.Symbols(), sd)
}
