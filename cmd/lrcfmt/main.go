// Command lrcfmt normalizes a lyrics file and prints it as LRC.
//
// Usage:
//
//	lrcfmt [-clean] [-plain] [-header] FILE|-
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/llehouerou/lrcsync/internal/errmsg"
	"github.com/llehouerou/lrcsync/internal/lyrics"
)

var errNoLines = errors.New("no lyrics lines found")

func main() {
	clean := flag.Bool("clean", false, "drop lines without letters or numbers")
	plain := flag.Bool("plain", false, "keep lines without timestamps")
	header := flag.Bool("header", false, "write [ti:], [ar:] and [al:] tags")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: lrcfmt [-clean] [-plain] [-header] FILE|-")
		os.Exit(2)
	}

	opts := lyrics.ParseOptions{CleanLyrics: *clean, KeepPlainText: *plain}
	if err := format(os.Stdout, flag.Arg(0), opts, *header); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.FormatWith(errmsg.OpParseFile, flag.Arg(0), err))
		os.Exit(1)
	}
}

func format(w io.Writer, path string, opts lyrics.ParseOptions, header bool) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	l := lyrics.Parse(string(data), opts)
	if l == nil {
		return errNoLines
	}
	return l.Encode(w, header)
}
