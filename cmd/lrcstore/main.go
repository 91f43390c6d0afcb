// Command lrcstore inspects the saved lyrics store.
//
// Usage:
//
//	lrcstore list
//	lrcstore get NAME [ARTISTS]
//	lrcstore delete NAME [ARTISTS]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/lrcsync/internal/config"
	"github.com/llehouerou/lrcsync/internal/errmsg"
	"github.com/llehouerou/lrcsync/internal/lyrics"
	"github.com/llehouerou/lrcsync/internal/store"
)

const usage = "usage: lrcstore list | get NAME [ARTISTS] | delete NAME [ARTISTS]"

var errUsage = errors.New(usage)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigLoad, err))
		os.Exit(1)
	}

	ctx := context.Background()
	sc := cfg.GetStoreConfig()
	st, err := store.Open(ctx, store.Options{
		Backend:       sc.Backend,
		Path:          sc.Path,
		RedisURL:      sc.RedisURL,
		RedisPassword: sc.RedisPassword,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpStoreOpen, err))
		os.Exit(1)
	}

	err = run(ctx, st, os.Stdout, os.Args[1:], time.Now())
	st.Close()
	if errors.Is(err, errUsage) {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, st store.Store, w io.Writer, args []string, now time.Time) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "list":
		return list(ctx, st, w, now)
	case "get", "delete":
		if len(args) < 2 || len(args) > 3 {
			return errUsage
		}
		track := lyrics.Track{Name: args[1]}
		if len(args) == 3 {
			track.Artists = args[2]
		}
		if args[0] == "get" {
			return get(ctx, st, w, track)
		}
		return remove(ctx, st, w, track)
	}
	return errUsage
}

func list(ctx context.Context, st store.Store, w io.Writer, now time.Time) error {
	entries, err := st.List(ctx)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStoreList, err))
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "no saved lyrics")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tARTISTS\tLINES\tSIZE\tUPDATED")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			e.Track.Name,
			e.Track.Artists,
			strings.Count(e.Lyric, "\n"),
			humanize.Bytes(uint64(len(e.Lyric))),
			humanize.RelTime(e.UpdatedAt, now, "ago", "from now"),
		)
	}
	return tw.Flush()
}

func get(ctx context.Context, st store.Store, w io.Writer, track lyrics.Track) error {
	lrc, err := st.GetLyrics(ctx, track)
	if err != nil {
		return fmt.Errorf("%s: %w", track, err)
	}
	_, err = io.WriteString(w, lrc)
	return err
}

func remove(ctx context.Context, st store.Store, w io.Writer, track lyrics.Track) error {
	if _, err := st.GetLyrics(ctx, track); err != nil {
		return fmt.Errorf("%s: %w", track, err)
	}
	if err := st.SaveLyrics(ctx, track, ""); err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpStoreDelete, track.String(), err))
	}
	fmt.Fprintf(w, "deleted %s\n", track)
	return nil
}
