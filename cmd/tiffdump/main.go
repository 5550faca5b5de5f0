package main

// Print the directories of TIFF and DNG files.

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/mdouchement/tiffdir"
	"github.com/pkg/errors"
)

func main() {
	var limit uint
	var dng bool
	flag.UintVar(&limit, "m", 20, "maximum values to print or 0 for no limit")
	flag.BoolVar(&dng, "dng", false, "print the first IFD and its high-resolution SubIFD only")
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Printf("Usage: %s [-dng] [-m max values] file...\n", os.Args[0])
		os.Exit(2)
	}

	var result error
	for _, name := range flag.Args() {
		if err := dump(os.Stdout, name, dng, int(limit)); err != nil {
			result = multierror.Append(result, errors.Wrap(err, name))
		}
	}
	if result != nil {
		log.Fatal(result)
	}
}

func dump(w io.Writer, name string, dng bool, limit int) error {
	f, err := os.Open(name)
	if err != nil {
		return errors.Wrap(err, "could not open file")
	}
	defer f.Close()

	r, err := tiffdir.NewReader(f)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %v\n", name, r.ByteOrder())

	if dng {
		d, err := r.ReadDNG()
		if err != nil {
			return err
		}
		printDirectory(w, "Primary", d.Primary, limit)
		printDirectory(w, "High resolution", d.HighRes, limit)
		return nil
	}

	dirs, err := r.ReadAll()
	if err != nil {
		return err
	}
	for i, d := range dirs {
		printDirectory(w, fmt.Sprintf("IFD #%d", i), d, limit)
	}
	return nil
}

func printDirectory(w io.Writer, title string, d *tiffdir.Directory, limit int) {
	fmt.Fprintf(w, "\n%s at offset %d with %d entries:\n", title, d.Offset, len(d.Fields))
	for _, tag := range d.Tags() {
		e := d.Fields[tag]
		fmt.Fprintf(w, "  %s (%d) %v[%d]: %s\n", tag, uint16(tag), e.Type, e.Count, formatValue(e, limit))
	}
	if d.Skipped > 0 {
		fmt.Fprintf(w, "  %d entries skipped after an unexpected field type\n", d.Skipped)
	}
}
