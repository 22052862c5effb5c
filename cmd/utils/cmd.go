// Package utils contains helper functions shared by the gsnrg commands.
package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
)

// Fatalf formats a message to standard error and exits the program.
func Fatalf(format string, args ...interface{}) {
	w := io.Writer(os.Stderr)
	if runtime.GOOS != "windows" {
		// The SameFile check does not work on Windows.
		outf, _ := os.Stdout.Stat()
		errf, _ := os.Stderr.Stat()
		if outf != nil && errf != nil && !os.SameFile(outf, errf) {
			w = io.MultiWriter(os.Stdout, os.Stderr)
		}
	}
	fmt.Fprintf(w, "Fatal: "+format+"\n", args...)
	os.Exit(1)
}

// PrintJSON writes v to standard output as indented JSON.
func PrintJSON(v interface{}) {
	enc, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		Fatalf("Failed to marshal JSON output: %v", err)
	}
	fmt.Println(string(enc))
}
