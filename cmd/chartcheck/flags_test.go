package main

import (
	"errors"
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		flags, err := parseFlags([]string{"chartcheck"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if flags.root != "." {
			t.Errorf("root = %q, want %q", flags.root, ".")
		}
		if flags.jsonOut || flags.quiet || flags.verbose || flags.version {
			t.Errorf("boolean flags = %+v, want all false", flags)
		}
	})

	t.Run("all flags set", func(t *testing.T) {
		flags, err := parseFlags([]string{"chartcheck", "--root", "site", "--json", "-q", "-v"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if flags.root != "site" {
			t.Errorf("root = %q, want %q", flags.root, "site")
		}
		if !flags.jsonOut || !flags.quiet || !flags.verbose {
			t.Errorf("flags = %+v, want json, quiet, and verbose set", flags)
		}
	})

	t.Run("version flag", func(t *testing.T) {
		flags, err := parseFlags([]string{"chartcheck", "--version"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !flags.version {
			t.Error("version = false, want true")
		}
	})

	t.Run("unknown flag returns ErrUsage", func(t *testing.T) {
		_, err := parseFlags([]string{"chartcheck", "--bogus"})
		if !errors.Is(err, ErrUsage) {
			t.Errorf("error = %v, want ErrUsage", err)
		}
	})

	t.Run("positional argument returns ErrUsage", func(t *testing.T) {
		_, err := parseFlags([]string{"chartcheck", "site"})
		if !errors.Is(err, ErrUsage) {
			t.Errorf("error = %v, want ErrUsage", err)
		}
	})
}
