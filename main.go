// Package main provides the entry point for the stitch tracker.
package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"

	"stitch-tracker/internal/config"
	"stitch-tracker/internal/pattern"
	"stitch-tracker/internal/remote"
	"stitch-tracker/internal/session"
	"stitch-tracker/internal/store"
	"stitch-tracker/internal/version"
)

const appTitle = "Stitch Tracker"

func main() {
	logrus.Infof("starting %s %s", appTitle, version.String())

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s chart.oxs\n", os.Args[0])
		os.Exit(2)
	}
	chartPath := os.Args[1]

	cfg := config.Load()

	f, err := os.Open(chartPath)
	if err != nil {
		logrus.Fatal(err)
	}
	pat, err := pattern.ParseOXS(f)
	f.Close()
	if err != nil {
		logrus.Fatal(err)
	}

	st, err := store.New(cfg.DataDir)
	if err != nil {
		logrus.Fatal(err)
	}

	var remoteSource session.RemoteSource
	if cfg.RemoteBaseURL != "" {
		remoteSource = remote.NewClient(cfg.RemoteBaseURL)
	}

	sess := session.New(st, remoteSource)
	sess.On(session.EventPatternCompleted, func(data interface{}) {
		logrus.Infof("pattern %v is complete", data)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	complete, err := sess.LoadPattern(ctx, pat)
	if err != nil {
		logrus.Fatal(err)
	}

	report(sess, complete)
}

// report prints a per-colour progress table for the loaded chart.
func report(sess *session.Session, complete bool) {
	pat := sess.Pattern

	fmt.Printf("%s (%s): %dx%d cells, %d colours\n", pat.Title, pat.ID, pat.Width, pat.Height, len(pat.Palette))

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "sym\tcode\tname\tdone\ttotal\twrong")
	for i, e := range pat.Palette {
		counts := sess.Progress.Counts[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
			e.Symbol, e.Code, e.Name,
			counts.Correct, e.TotalTargets, counts.Wrong)
	}
	w.Flush()

	if complete {
		fmt.Println("chart complete")
	} else if sess.TotalWrongCount() > 0 {
		fmt.Printf("%d wrong stitches need removal\n", sess.TotalWrongCount())
	}
}
