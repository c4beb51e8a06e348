// SPDX-License-Identifier: EPL-2.0

// Package sampletrim prepares uncompressed PCM sample files: it joins mono
// pairs into stereo, normalizes peak level, trims trailing silence and
// slices loops into bar-length segments.
//
// This root package holds the file-level convenience API. The real work
// happens in the subpackages:
//   - pcm: the sample data model and the byte codec for 8/16/24/32-bit PCM
//   - dsp: normalization, silence trimming, zero-crossing search, joining
//     and slicing as pure buffer transforms
//   - formats/wav, formats/aiff: container adapters over go-audio
//
// # Quick Start
//
// Trim the silence off the end of a recorded sample:
//
//	res, err := sampletrim.TrimFile("snare.wav", "snare_trimmed.wav", dsp.TrimOptions{
//	    ThresholdDB: -60,
//	    MinTailSec:  0.5,
//	})
//	if err != nil {
//	    // handle error
//	}
//	fmt.Printf("removed %.1f%%\n", res.Reduction*100)
//
// Normalize to just below full scale and join a mono pair:
//
//	_, err = sampletrim.NormalizeFile("kick.wav", "kick_n.wav", sampletrim.DefaultTargetPeakDB)
//	err = sampletrim.JoinFiles("pad L.wav", "pad R.wav", "pad_stereo.wav")
//
// # Directory Batches
//
// Every operation has a directory form that processes each supported file
// and reports per-file outcomes instead of stopping at the first failure:
//
//	batch, err := sampletrim.TrimDir("./samples", "", dsp.TrimOptions{})
//	fmt.Printf("%d ok, %d failed\n", batch.Succeeded(), batch.Failed())
//
// Batches of independent files may also be run concurrently by the caller;
// the buffer transforms hold no shared state.
//
// # Working on Buffers Directly
//
// The file layer is glue. Callers that already hold sample data use the
// pcm and dsp packages directly:
//
//	buf, err := pcm.Decode(raw, pcm.Depth24, 2, 44100)
//	res, err := dsp.Normalize(buf, -0.1)
//	raw, err = pcm.Encode(res.Buffer)
//
// # External Tools
//
// Sample-rate and bit-depth conversion is delegated to ffmpeg via
// ConvertFile; the module itself never resamples.
package sampletrim
