// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"

	monowav "github.com/monowav/monowav"
	"github.com/monowav/monowav/formats/aiff"
)

// Example demonstrates converting an AIFF file to mono 16-bit WAV.
func Example() {
	// Open AIFF file
	f, err := os.Open("input.aif")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	// Decode to mono float samples
	samples, rate, err := aiff.Samples(f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decoded %d samples at %d Hz\n", len(samples), rate)

	// Encode as WAV
	buf := monowav.Encode(samples, rate)

	if err := os.WriteFile("output.wav", buf, 0o644); err != nil {
		log.Fatal(err)
	}

	fmt.Println("AIFF converted to WAV")
}

// ExampleSamples_errorHandling shows detecting non-AIFF input.
func ExampleSamples_errorHandling() {
	invalidData := bytes.NewReader([]byte("not an aiff file"))

	_, _, err := aiff.Samples(invalidData)
	if errors.Is(err, aiff.ErrNotAiffFile) {
		fmt.Println("not a valid AIFF stream")
		return
	}

	fmt.Println("AIFF decoded successfully")

	// Output:
	// not a valid AIFF stream
}
