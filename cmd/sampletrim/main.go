// Command sampletrim processes PCM sample files: joining mono pairs into
// stereo, slicing loops, normalizing peaks, trimming trailing silence,
// converting via ffmpeg and renaming by MIDI note.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/sampletrim"
	"github.com/ik5/sampletrim/dsp"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s <command> [options]

Commands:
  join       Join mono L/R files into stereo
  slice      Slice audio files into bar-length segments
  normalize  Normalize audio files to a target peak
  trim       Trim trailing silence
  convert    Convert sample rate / bit depth via ffmpeg
  rename     Rename files by consecutive MIDI drum notes

Run '%s <command> -h' for command options.
`, os.Args[0], os.Args[0])
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "join":
		err = runJoin(os.Args[2:])
	case "slice":
		err = runSlice(os.Args[2:])
	case "normalize":
		err = runNormalize(os.Args[2:])
	case "trim":
		err = runTrim(os.Args[2:])
	case "convert":
		err = runConvert(os.Args[2:])
	case "rename":
		err = runRename(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func reportBatch(batch sampletrim.BatchResult) {
	for _, r := range batch.Reports {
		switch {
		case r.Err != nil:
			fmt.Printf("failed: %s: %v\n", filepath.Base(r.Input), r.Err)
		case r.Silent:
			fmt.Printf("ok (silence): %s -> %s\n", filepath.Base(r.Input), filepath.Base(r.Output))
		default:
			fmt.Printf("ok: %s -> %s\n", filepath.Base(r.Input), filepath.Base(r.Output))
		}
	}
	fmt.Printf("%d of %d files processed successfully\n",
		batch.Succeeded(), len(batch.Reports))
}

func runJoin(args []string) error {
	fs := flag.NewFlagSet("join", flag.ExitOnError)
	dir := fs.String("d", "", "directory containing L and R mono files")
	left := fs.String("l", "", "left channel mono file")
	right := fs.String("r", "", "right channel mono file")
	output := fs.String("o", "output_stereo.wav", "output stereo file")
	fs.Parse(args)

	if *dir != "" {
		batch, err := sampletrim.JoinDir(*dir)
		if err != nil {
			return err
		}
		reportBatch(batch)
		return nil
	}
	if *left == "" || *right == "" {
		return fmt.Errorf("either -d or both -l and -r are required")
	}
	if err := sampletrim.JoinFiles(*left, *right, *output); err != nil {
		return err
	}
	fmt.Println("created stereo file:", *output)
	return nil
}

func runSlice(args []string) error {
	fs := flag.NewFlagSet("slice", flag.ExitOnError)
	file := fs.String("f", "", "audio file to slice")
	bpm := fs.Int("b", 120, "tempo in BPM")
	bars := fs.Int("a", 2, "bars per slice")
	fs.Parse(args)

	if *file == "" {
		return fmt.Errorf("-f is required")
	}
	prefix := strings.TrimSuffix(*file, filepath.Ext(*file))
	written, err := sampletrim.SliceFile(*file, prefix, *bpm, *bars)
	if err != nil {
		return err
	}
	for _, path := range written {
		fmt.Println("created segment:", path)
	}
	return nil
}

func runNormalize(args []string) error {
	fs := flag.NewFlagSet("normalize", flag.ExitOnError)
	file := fs.String("f", "", "audio file to normalize")
	dir := fs.String("d", "", "directory of audio files to normalize")
	peak := fs.Float64("p", sampletrim.DefaultTargetPeakDB, "target peak level in dB")
	output := fs.String("o", "output_normalized.wav", "output file")
	fs.Parse(args)

	if *dir != "" {
		batch, err := sampletrim.NormalizeDir(*dir, *peak)
		if err != nil {
			return err
		}
		reportBatch(batch)
		return nil
	}
	if *file == "" {
		return fmt.Errorf("either -f or -d is required")
	}
	res, err := sampletrim.NormalizeFile(*file, *output, *peak)
	if err != nil {
		return err
	}
	if res.Silent {
		fmt.Println("warning: audio contains only silence")
	}
	fmt.Printf("normalized %s to %.1f dB\n", *output, *peak)
	return nil
}

func runTrim(args []string) error {
	fs := flag.NewFlagSet("trim", flag.ExitOnError)
	file := fs.String("f", "", "audio file to trim")
	dir := fs.String("d", "", "directory of audio files to trim")
	outDir := fs.String("O", "", "output directory for batch trims")
	threshold := fs.Float64("t", dsp.DefaultThresholdDB, "silence threshold in dB")
	tail := fs.Float64("m", dsp.DefaultMinTailSec, "minimum tail to keep in seconds")
	fs.Parse(args)

	opts := dsp.TrimOptions{ThresholdDB: *threshold, MinTailSec: *tail}

	if *dir != "" {
		batch, err := sampletrim.TrimDir(*dir, *outDir, opts)
		if err != nil {
			return err
		}
		reportBatch(batch)
		return nil
	}
	if *file == "" {
		return fmt.Errorf("either -f or -d is required")
	}

	ext := filepath.Ext(*file)
	output := strings.TrimSuffix(*file, ext) + "_trimmed" + ext
	res, err := sampletrim.TrimFile(*file, output, opts)
	if err != nil {
		return err
	}
	fmt.Printf("trimmed %s (removed %.1f%% - %d frames)\n",
		output, res.Reduction*100, res.OriginalFrames-res.CutFrame)
	return nil
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	file := fs.String("f", "", "audio file to convert")
	dir := fs.String("d", "", "directory of audio files to convert")
	rate := fs.Int("s", 44100, "target sample rate")
	depth := fs.Int("b", 16, "target bit depth")
	output := fs.String("o", "output_converted.wav", "output file")
	fs.Parse(args)

	if *dir != "" {
		batch, err := sampletrim.ConvertDir(*dir, *rate, *depth)
		if err != nil {
			return err
		}
		reportBatch(batch)
		return nil
	}
	if *file == "" {
		return fmt.Errorf("either -f or -d is required")
	}
	if err := sampletrim.ConvertFile(*file, *output, *rate, *depth); err != nil {
		return err
	}
	fmt.Printf("converted %s to %d Hz, %d-bit\n", *output, *rate, *depth)
	return nil
}

func runRename(args []string) error {
	fs := flag.NewFlagSet("rename", flag.ExitOnError)
	dir := fs.String("d", "", "directory of audio files to rename")
	start := fs.Int("n", 35, "starting MIDI note")
	apply := fs.Bool("apply", false, "apply the renames instead of previewing")
	overwrite := fs.Bool("overwrite", false, "overwrite existing target files")
	fs.Parse(args)

	if *dir == "" {
		return fmt.Errorf("-d is required")
	}

	plans, err := sampletrim.PlanRenames(*dir, *start)
	if err != nil {
		return err
	}

	if !*apply {
		for _, p := range plans {
			fmt.Printf("%s -> %s (note %d, %s)\n",
				filepath.Base(p.From), filepath.Base(p.To), p.Note, p.Instrument)
		}
		fmt.Println("preview only; pass -apply to rename")
		return nil
	}

	applied, err := sampletrim.ApplyRenames(plans, *overwrite)
	if err != nil {
		return err
	}
	fmt.Printf("renamed %d of %d files\n", applied, len(plans))
	return nil
}
