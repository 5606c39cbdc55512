// Command utfdump prints Unicode character properties from an encoded
// container.
//
// It reads UTF-8 text from its arguments (or stdin when no arguments are
// given) and prints one table row per character.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/arloliu/utfdump"
	"github.com/arloliu/utfdump/compress"
	"github.com/arloliu/utfdump/format"
	"github.com/arloliu/utfdump/ucd"
)

func main() {
	log.SetPrefix("utfdump: ")
	log.SetFlags(0)

	var (
		dataPath     = flag.String("data", "unicode_data_encoded.gz", "encoded container file")
		compression  = flag.String("compression", "gzip", "compression wrapper of the container: none, gzip, zstd, s2, lz4")
		fullCategory = flag.Bool("full-category-names", false, "display category names in plain English")
	)
	flag.Parse()

	compressionType, err := compress.ParseType(*compression)
	if err != nil {
		log.Fatal(err)
	}

	raw, err := os.ReadFile(*dataPath)
	if err != nil {
		log.Fatal(err)
	}

	view, err := utfdump.Decode(raw, compressionType)
	if err != nil {
		log.Fatal(err)
	}

	input := strings.Join(flag.Args(), " ")
	if input == "" {
		stdin, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("read stdin: %v", err)
		}
		input = string(stdin)
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tCode\tName\tCategory\tCombining")

	for _, r := range input {
		printRow(w, view, r, *fullCategory)
	}

	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
}

func printRow(w io.Writer, view *ucd.UnicodeData, r rune, fullCategory bool) {
	display := string(r)
	if r == '\n' || r == '\r' || r == '\t' {
		display = ""
	}

	cd, ok := view.Get(uint32(r))
	if !ok {
		fmt.Fprintf(w, "%s\tU+%04X\t(unassigned)\t\t\n", display, r)
		return
	}

	category := cd.Category.String()
	if fullCategory {
		category = cd.Category.FullName()
	}

	combining := ""
	if ccc := format.CombiningClass(cd.Combining); ccc.IsCombining() {
		combining = ccc.String()
	}

	fmt.Fprintf(w, "%s\tU+%04X\t%s\t%s\t%s\n", display, r, cd.Name, category, combining)
}
