package sampletrim

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// gmDrumMap names the General MIDI percussion notes 35..81.
var gmDrumMap = map[int]string{
	35: "Acoustic Bass Drum",
	36: "Bass Drum 1",
	37: "Side Stick",
	38: "Acoustic Snare",
	39: "Hand Clap",
	40: "Electric Snare",
	41: "Low Floor Tom",
	42: "Closed Hi-Hat",
	43: "High Floor Tom",
	44: "Pedal Hi-Hat",
	45: "Low Tom",
	46: "Open Hi-Hat",
	47: "Low-Mid Tom",
	48: "Hi-Mid Tom",
	49: "Crash Cymbal 1",
	50: "High Tom",
	51: "Ride Cymbal 1",
	52: "Chinese Cymbal",
	53: "Ride Bell",
	54: "Tambourine",
	55: "Splash Cymbal",
	56: "Cowbell",
	57: "Crash Cymbal 2",
	58: "Vibraslap",
	59: "Ride Cymbal 2",
	60: "Hi Bongo",
	61: "Low Bongo",
	62: "Mute Hi Conga",
	63: "Open Hi Conga",
	64: "Low Conga",
	65: "High Timbale",
	66: "Low Timbale",
	67: "High Agogo",
	68: "Low Agogo",
	69: "Cabasa",
	70: "Maracas",
	71: "Short Whistle",
	72: "Long Whistle",
	73: "Short Guiro",
	74: "Long Guiro",
	75: "Claves",
	76: "Hi Wood Block",
	77: "Low Wood Block",
	78: "Mute Cuica",
	79: "Open Cuica",
	80: "Mute Triangle",
	81: "Open Triangle",
}

// GMDrumName returns the General MIDI percussion name for a note, or
// "Unnamed" when the note has no assignment.
func GMDrumName(note int) string {
	if name, ok := gmDrumMap[note]; ok {
		return name
	}
	return "Unnamed"
}

// Rename is one planned file rename in a MIDI-note mapping.
type Rename struct {
	From       string
	To         string
	Note       int
	Instrument string
}

// PlanRenames maps the directory's audio files, in sorted order, onto
// consecutive MIDI notes starting at startNote and returns the planned
// renames without touching anything. The new names follow
// "name_note_instrument.ext" with spaces in the instrument replaced by
// underscores. More files than remaining MIDI notes is an error.
func PlanRenames(dir string, startNote int) ([]Rename, error) {
	files, err := listAudioFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("plan renames: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("plan renames %s: %w", dir, ErrNoFiles)
	}
	if startNote+len(files)-1 > 127 {
		return nil, fmt.Errorf("plan renames: %d files from note %d: %w", len(files), startNote, ErrNotEnoughNotes)
	}

	plans := make([]Rename, 0, len(files))
	note := startNote
	for _, path := range files {
		base := filepath.Base(path)
		ext := filepath.Ext(base)
		name := strings.TrimSuffix(base, ext)
		instrument := strings.ReplaceAll(GMDrumName(note), " ", "_")

		plans = append(plans, Rename{
			From:       path,
			To:         filepath.Join(dir, fmt.Sprintf("%s_%03d_%s%s", name, note, instrument, ext)),
			Note:       note,
			Instrument: instrument,
		})
		note++
	}
	return plans, nil
}

// ApplyRenames executes planned renames. Existing targets are skipped
// unless overwrite is set; the first filesystem failure aborts.
func ApplyRenames(plans []Rename, overwrite bool) (int, error) {
	applied := 0
	for _, p := range plans {
		if !overwrite {
			if _, err := os.Stat(p.To); err == nil {
				continue
			}
		}
		if err := os.Rename(p.From, p.To); err != nil {
			return applied, fmt.Errorf("apply renames: %w", err)
		}
		applied++
	}
	return applied, nil
}
