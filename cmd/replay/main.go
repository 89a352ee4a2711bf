package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/trytobebee/snake_classic/pkg/config"
	"github.com/trytobebee/snake_classic/pkg/game"
	"github.com/trytobebee/snake_classic/pkg/renderer"
)

// RecordFile describes one recording on disk
type RecordFile struct {
	Name string
	Size int64
	Time time.Time
}

func main() {
	dir := flag.String("dir", config.RecordDir, "recordings directory (used by -list)")
	list := flag.Bool("list", false, "list recordings and exit")
	speed := flag.Float64("speed", 1, "playback speed multiplier")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: replay [-speed N] FILE.jsonl | replay -list [-dir DIR]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		files, err := listRecordings(*dir)
		if err != nil {
			log.Fatal(err)
		}
		for _, f := range files {
			fmt.Printf("%-48s %8d bytes  %s\n", f.Name, f.Size, f.Time.Format(time.DateTime))
		}
		return
	}

	if flag.NArg() != 1 || *speed <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	records, err := game.ReadRecording(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	if err := play(os.Stdout, records, *speed, time.Sleep); err != nil {
		log.Fatal(err)
	}
}

// listRecordings returns the .jsonl files in dir, newest first
func listRecordings(dir string) ([]RecordFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read records dir: %w", err)
	}

	var files []RecordFile
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".jsonl") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, RecordFile{
			Name: filepath.Join(dir, e.Name()),
			Size: info.Size(),
			Time: info.ModTime(),
		})
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Time.After(files[j].Time)
	})
	return files, nil
}

// play renders every recorded step, waiting out the recorded gaps
func play(w io.Writer, records []game.StepRecord, speed float64, sleep func(time.Duration)) error {
	if len(records) == 0 {
		return fmt.Errorf("recording is empty")
	}

	first := records[0].State
	render := renderer.NewTerminalRenderer(first.Width, first.Height)

	for i, rec := range records {
		if i > 0 {
			gap := rec.Time.Sub(records[i-1].Time)
			if gap > 0 {
				sleep(time.Duration(float64(gap) / speed))
			}
		}
		if err := render.Render(w, rec.State); err != nil {
			return fmt.Errorf("render step %d: %w", rec.Step, err)
		}
		fmt.Fprintf(w, "  step %d/%d  action %s\r\n", i+1, len(records), rec.Action)
	}

	last := records[len(records)-1].State
	fmt.Fprintf(w, "\r\n  Replay finished: %s, score %d\r\n", last.RunState, last.Score)
	return nil
}
