package seqplot

import (
	"strconv"
	"strings"

	"github.com/admarks/seqplot/pkg/seqplot/invoke"
	"github.com/admarks/seqplot/pkg/seqplot/models"
)

// DataFilename returns the file the generator's table is written to.
func DataFilename(names []string) string {
	return strings.Join(names, "-") + ".txt"
}

// LogFilename returns the file the generator's stderr is written to.
func LogFilename(names []string) string {
	return strings.Join(names, "-") + ".log"
}

// ValidateGeneration checks that req names at least one sequence and a
// non-empty index range.
func ValidateGeneration(req models.GenerationRequest) error {
	if len(req.Names) == 0 {
		return NewRequestError("names", "at least one sequence is required")
	}
	for i, name := range req.Names {
		if strings.TrimSpace(name) == "" {
			return NewRequestError("names["+strconv.Itoa(i)+"]", "name is empty")
		}
	}
	if req.Begin > req.End {
		return NewRequestError("range", "begin "+strconv.Itoa(req.Begin)+" is after end "+strconv.Itoa(req.End))
	}
	return nil
}

// GenerationCommand returns the generator invocation for req.
func GenerationCommand(bin string, req models.GenerationRequest) (invoke.Command, error) {
	if err := ValidateGeneration(req); err != nil {
		return invoke.Command{}, err
	}
	args := []string{"-b", strconv.Itoa(req.Begin), "-e", strconv.Itoa(req.End)}
	args = append(args, req.Names...)
	return invoke.Command{
		Path:       bin,
		Args:       args,
		StdoutFile: DataFilename(req.Names),
		StderrFile: LogFilename(req.Names),
	}, nil
}

// Generate runs the generator for req through r.
func Generate(r invoke.Runner, bin string, req models.GenerationRequest) error {
	cmd, err := GenerationCommand(bin, req)
	if err != nil {
		return err
	}
	return r.RunCommand(cmd)
}
