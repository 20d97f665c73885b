// SPDX-License-Identifier: EPL-2.0

// Package riff writes the fixed 44-byte RIFF/WAVE header for mono
// 16-bit PCM files.
//
// The header layout is canonical and never varies:
//
//	offset size field
//	     0    4 "RIFF"
//	     4    4 chunk size: 36 + data bytes (little-endian)
//	     8    4 "WAVE"
//	    12    4 "fmt "
//	    16    4 fmt chunk size: 16
//	    20    2 audio format: 1 (PCM)
//	    22    2 channels: 1
//	    24    4 sample rate
//	    28    4 byte rate: sample rate × 2
//	    32    2 block align: 2
//	    34    2 bits per sample: 16
//	    36    4 "data"
//	    40    4 data bytes: sample count × 2
//
// ASCII identifiers occupy their offsets byte-for-byte; every numeric
// field is little-endian.
//
// # Usage
//
// Size computes the full buffer length for a sample count, PutHeader
// fills in the first 44 bytes:
//
//	buf := make([]byte, riff.Size(len(samples)))
//	riff.PutHeader(buf, len(samples), 44100)
//	// buf[44:] is ready for PCM sample data
//
// The package writes headers only. Sample serialization lives in
// package pcm, and the two are tied together by the monowav root
// package.
package riff
