// Command eegmontage re-references a multichannel recording and prints a
// per-channel summary.
//
// Usage:
//
//	eegmontage -in recording.csv -sf 256 [flags]
//
// The input is a CSV file whose header row holds the channel labels and
// whose following rows hold one sample per channel. Conditioning is read
// from a YAML file (-config) and/or flags; flags win.
//
// Examples:
//
//	eegmontage -in night.csv -sf 1000 -ds 100 -scheme average
//	eegmontage -in seeg.csv -sf 512 -scheme bipolar -out bipolar.csv
//	eegmontage -in night.csv -sf 256 -scheme reference -ref Cz -bands
//	eegmontage -in night.csv -sf 256 -config montage.yaml
//	eegmontage -in night.csv -sf 256 -hyp night.hyp -bands -window hamming
package main

import (
	"bufio"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-eeg/dsp/window"
	"github.com/cwbudde/algo-eeg/eeg/channel"
	"github.com/cwbudde/algo-eeg/eeg/diag"
	"github.com/cwbudde/algo-eeg/eeg/hypno"
	"github.com/cwbudde/algo-eeg/eeg/montage"
	"github.com/cwbudde/algo-eeg/eeg/pipeline"
	"github.com/cwbudde/algo-eeg/eeg/recording"
	"github.com/cwbudde/algo-eeg/eeg/signal"
	"github.com/cwbudde/algo-eeg/eeg/spectral"
)

func main() {
	in := flag.String("in", "", "input CSV (header: channel labels, rows: samples)")
	sf := flag.Float64("sf", 0, "sampling frequency in Hz")
	configPath := flag.String("config", "", "YAML conditioning config")
	scheme := flag.String("scheme", "", "montage: none, reference, bipolar, average")
	ref := flag.String("ref", "", "reference channel label (scheme reference)")
	ds := flag.Float64("ds", -1, "down-sampling frequency in Hz (0 keeps the sampling rate)")
	sep := flag.String("sep", "", "label separator for bipolar derivation (default \".\")")
	digitRun := flag.String("digit-run", "", "electrode number: first or trailing digit run")
	keepNonEEG := flag.Bool("keep-non-eeg", false, "do not ignore EOG/EMG/ECG/abdominal channels")
	hypPath := flag.String("hyp", "", "hypnogram file, one stage value per sample")
	bands := flag.Bool("bands", false, "print delta/theta/alpha/sigma/beta band power")
	win := flag.String("window", "hann", "band power window: hann, hamming, blackman, rectangular")
	out := flag.String("out", "", "write the conditioned signals to this CSV file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eegmontage -in file.csv -sf rate [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Re-references a recording and prints per-channel statistics.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := log.New(os.Stderr, "eegmontage: ", 0)

	if *in == "" || *sf <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := pipeline.DefaultConfig()
	if *configPath != "" {
		loaded, err := pipeline.LoadConfig(*configPath)
		if err != nil {
			logger.Fatalf("error: %v", err)
		}
		cfg = *loaded
	}

	applyFlags(&cfg, flagOverrides{
		scheme:     *scheme,
		ref:        *ref,
		ds:         *ds,
		sep:        sep,
		sepSet:     isFlagSet("sep"),
		digitRun:   *digitRun,
		keepNonEEG: *keepNonEEG,
	})
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("error: %v", err)
	}

	f, err := os.Open(*in)
	if err != nil {
		logger.Fatalf("error: %v", err)
	}
	labels, data, err := readCSV(f)
	_ = f.Close()
	if err != nil {
		logger.Fatalf("error: reading %s: %v", *in, err)
	}

	var hyp []float64
	if *hypPath != "" {
		hf, err := os.Open(*hypPath)
		if err != nil {
			logger.Fatalf("error: %v", err)
		}
		hyp, err = readHypnogram(hf)
		_ = hf.Close()
		if err != nil {
			logger.Fatalf("error: reading %s: %v", *hypPath, err)
		}
	}

	rec, err := recording.Load(cfg.Input(data, labels, *sf, hyp),
		recording.WithReporter(diag.LogReporter(logger)))
	if err != nil {
		logger.Fatalf("error: %v", err)
	}

	res, err := pipeline.Run(rec, cfg)
	if err != nil {
		logger.Fatalf("error: %v", err)
	}

	var bandPower [][]float64
	if *bands {
		wt, err := window.ParseType(*win)
		if err != nil {
			logger.Fatalf("error: %v", err)
		}
		bandPower, err = spectral.Bands(rec.Data, rec.SampleRate, nil, spectral.WithWindow(wt))
		if err != nil {
			logger.Printf("warning: band power unavailable: %v", err)
		}
	}

	if err := printTable(os.Stdout, rec, res, bandPower); err != nil {
		logger.Fatalf("error: %v", err)
	}
	if *hypPath != "" {
		if err := printStages(os.Stdout, rec.Hypnogram); err != nil {
			logger.Fatalf("error: %v", err)
		}
	}

	if *out != "" {
		if err := writeFile(*out, rec.Channels, rec.Data); err != nil {
			logger.Fatalf("error: %v", err)
		}
	}
}

type flagOverrides struct {
	scheme     string
	ref        string
	ds         float64
	sep        *string
	sepSet     bool
	digitRun   string
	keepNonEEG bool
}

func applyFlags(cfg *pipeline.Config, o flagOverrides) {
	if o.scheme != "" {
		cfg.Montage.Scheme = pipeline.Scheme(o.scheme)
	}
	if o.ref != "" {
		cfg.Montage.Reference = o.ref
		if o.scheme == "" && cfg.Montage.Scheme == pipeline.SchemeNone {
			cfg.Montage.Scheme = pipeline.SchemeReference
		}
	}
	if o.ds >= 0 {
		cfg.Downsample = o.ds
	}
	if o.sepSet {
		s := *o.sep
		cfg.Montage.Separator = &s
	}
	if o.digitRun != "" {
		cfg.Montage.DigitRun = o.digitRun
	}
	if o.keepNonEEG {
		cfg.Ignore.NonEEG = false
	}
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// readCSV parses a header of labels followed by one row per sample and
// returns the data as (channels x samples).
func readCSV(r io.Reader) ([]string, [][]float64, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, errors.New("empty input")
		}
		return nil, nil, err
	}

	data := make([][]float64, len(header))
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		for i, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d, column %d: %w", line, i+1, err)
			}
			data[i] = append(data[i], v)
		}
	}

	if len(data) == 0 || len(data[0]) == 0 {
		return nil, nil, errors.New("no samples")
	}

	return header, data, nil
}

// writeCSV writes names as the header and one row per sample.
func writeCSV(w io.Writer, names channel.Names, m *signal.Matrix) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(names.Strings()); err != nil {
		return err
	}

	rec := make([]string, m.Rows())
	for j := 0; j < m.Cols(); j++ {
		for i := range rec {
			rec[i] = strconv.FormatFloat(float64(m.At(i, j)), 'g', -1, 32)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func writeFile(path string, names channel.Names, m *signal.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeCSV(f, names, m); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return f.Close()
}

func printTable(w io.Writer, rec *recording.Recording, res pipeline.Result, bandPower [][]float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := "#\tChannel\tUse\tMean\tStd\tMin\tMax"
	rule := "-\t-------\t---\t----\t---\t---\t---"
	if bandPower != nil {
		for _, b := range spectral.DefaultBands {
			header += "\t" + b.Name
			rule += "\t" + strings.Repeat("-", len(b.Name))
		}
	}
	if _, err := fmt.Fprintf(tw, "%s\n%s\n", header, rule); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	info := rec.Info()
	for i, name := range rec.Channels {
		use := "no"
		if res.Consider[i] {
			use = "yes"
		}
		row := fmt.Sprintf("%d\t%s\t%s\t%.3f\t%.3f\t%.3f\t%.3f",
			i, name, use, info.Mean[i], info.Std[i], info.Min[i], info.Max[i])
		if bandPower != nil {
			for _, p := range bandPower[i] {
				row += fmt.Sprintf("\t%.4g", p)
			}
		}
		if _, err := fmt.Fprintln(tw, row); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if _, err := fmt.Fprintf(tw, "\nscheme=%s rate=%gHz samples=%d considered=%d/%d\n",
		res.Scheme, rec.SampleRate, rec.Data.Cols(), montage.Count(res.Consider), len(res.Consider)); err != nil {
		return fmt.Errorf("failed to write output footer: %w", err)
	}

	return tw.Flush()
}

// readHypnogram reads one stage value per line. Blank lines and lines
// starting with '#' are skipped.
func readHypnogram(r io.Reader) ([]float64, error) {
	var out []float64
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		field := strings.TrimSpace(sc.Text())
		if field == "" || strings.HasPrefix(field, "#") {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// printStages writes the number of samples and the share of each stage.
func printStages(w io.Writer, h []float32) error {
	counts := hypno.Counts(h)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "\nStage\tSamples\tShare\n-----\t-------\t-----\n"); err != nil {
		return fmt.Errorf("failed to write stage header: %w", err)
	}
	for s := hypno.MinStage; s <= hypno.MaxStage; s++ {
		share := 0.0
		if len(h) > 0 {
			share = 100 * float64(counts[s]) / float64(len(h))
		}
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.1f%%\n", s, counts[s], share); err != nil {
			return fmt.Errorf("failed to write stage row: %w", err)
		}
	}

	return tw.Flush()
}
