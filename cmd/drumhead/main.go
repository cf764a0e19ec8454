// SPDX-License-Identifier: MIT

// Command drumhead computes Dirichlet Laplacian eigenfunctions of a region
// described in a YAML problem file and prints the eigenvalues together with
// the sign pattern of each eigenfunction.
//
// Usage:
//
//	drumhead -config problem.yaml [-log debug] [-fields=false]
//
// "-config -" reads the problem from standard input. See Problem for the
// file format and testdata/ for sample problems.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/drumhead/eigen"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "drumhead:", err)
		os.Exit(1)
	}
}

// run parses args, solves the problem and writes the report to stdout.
// Logs go to stderr.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("drumhead", flag.ContinueOnError)
	fs.SetOutput(stderr)
	config := fs.String("config", "", "problem file (YAML), - for stdin")
	level := fs.String("log", "warn", "log level: debug, info, warn or error")
	fields := fs.Bool("fields", true, "print the sign pattern of each eigenfunction")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *config == "" {
		fs.Usage()
		return fmt.Errorf("%w: -config is required", errProblem)
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(*level)); err != nil {
		return fmt.Errorf("-log: %w", err)
	}
	eigen.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl})))
	defer eigen.SetLogger(nil)

	in := stdin
	if *config != "-" {
		f, err := os.Open(*config)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	p, err := loadProblem(in)
	if err != nil {
		return err
	}

	g, err := p.Grid()
	if err != nil {
		return err
	}
	opts, err := p.Options()
	if err != nil {
		return err
	}
	s, err := eigen.Eigenfunctions(g, p.K, opts...)
	if err != nil {
		return err
	}

	return report(stdout, s, *fields)
}

func report(w io.Writer, s *eigen.Spectrum, fields bool) error {
	for i := 0; i < s.Len(); i++ {
		l, u := s.Mode(i)
		if _, err := fmt.Fprintf(w, "mode %d: %.10g\n", i, l); err != nil {
			return err
		}
		if !fields {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\n", u); err != nil {
			return err
		}
	}

	return nil
}
