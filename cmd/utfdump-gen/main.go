// Command utfdump-gen fetches UnicodeData.txt and writes the encoded
// container, optionally wrapped in a compression codec.
//
// It is a build-time data generation tool: any failure aborts the run before
// the output file is touched.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/arloliu/utfdump/compress"
	"github.com/arloliu/utfdump/source"
	"github.com/arloliu/utfdump/ucd"
)

func main() {
	log.SetPrefix("")
	log.SetFlags(0)
	log.SetOutput(os.Stdout)

	var (
		url         = flag.String("url", source.DefaultURL, "UnicodeData.txt source URL")
		out         = flag.String("out", "unicode_data_encoded.gz", "output file path")
		compression = flag.String("compression", "gzip", "compression wrapper: none, gzip, zstd, s2, lz4")
		timeout     = flag.Duration("timeout", source.DefaultTimeout, "fetch timeout")
		quiet       = flag.Bool("quiet", false, "suppress the progress bar")
	)
	flag.Parse()

	compressionType, err := compress.ParseType(*compression)
	if err != nil {
		log.Fatal(err)
	}

	codec, err := compress.CreateCodec(compressionType, "container")
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Fetching Unicode data from %s...", *url)
	fetchStart := time.Now()

	provider := source.NewHTTPProvider(*url, *timeout)
	body, err := provider.Fetch(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	input, err := io.ReadAll(body)
	body.Close()
	if err != nil {
		log.Fatalf("read %s: %v", *url, err)
	}

	log.Printf("Fetched %d bytes in %s", len(input), time.Since(fetchStart).Round(time.Millisecond))

	var bar *progressbar.ProgressBar
	if *quiet {
		bar = progressbar.DefaultSilent(int64(len(input)), "encoding")
	} else {
		bar = progressbar.DefaultBytes(int64(len(input)), "encoding")
	}

	encoder := ucd.NewEncoder()
	scanner := bufio.NewScanner(strings.NewReader(string(input)))
	rows := 0
	for scanner.Scan() {
		line := scanner.Text()
		if err := encoder.AddLine(line); err != nil {
			log.Fatalf("row %d: %v", rows+1, err)
		}
		rows++
		_ = bar.Add(len(line) + 1)
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("scan input: %v", err)
	}
	_ = bar.Finish()

	log.Printf("Encoded %d rows: %d character records, %d groups, %d strings",
		rows, encoder.CharCount(), encoder.GroupCount(), encoder.StringCount())

	container, err := encoder.Finish()
	if err != nil {
		log.Fatal(err)
	}

	output, err := codec.Compress(container)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Container: %d bytes, %s: %d bytes", len(container), compressionType, len(output))

	if err := writeAtomic(*out, output); err != nil {
		log.Fatal(err)
	}

	log.Printf("Wrote %s", *out)
}

// writeAtomic writes data to path via a temp file and rename, so a failed run
// never leaves a partial output file behind.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename %s: %w", tmp.Name(), err)
	}

	return nil
}
