package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	sim "github.com/solidarity-fund/fund-sim/sim"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// validateFormat rejects output formats writeResults cannot render.
func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q; valid: text, json", format)
	}
}

// writeResults renders the last run of s in the given format to w.
func writeResults(w io.Writer, s *sim.Simulator, format string) error {
	switch format {
	case formatText:
		_, err := io.WriteString(w, s.Report())
		return err
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s.Export())
	default:
		return validateFormat(format)
	}
}

// saveResults writes to outputPath, or stdout when outputPath is empty.
func saveResults(s *sim.Simulator, format, outputPath string) error {
	if outputPath == "" {
		return writeResults(os.Stdout, s, format)
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputPath, err)
	}
	if err := writeResults(file, s, format); err != nil {
		_ = file.Close()
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", outputPath, err)
	}
	logrus.Infof("Results written to %s", outputPath)
	return nil
}
