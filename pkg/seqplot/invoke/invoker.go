// Package invoke runs external commands synchronously.
package invoke

import (
	"errors"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"
)

// Command is one external process invocation.
type Command struct {
	// Path is the program to run.
	Path string
	// Args are the arguments, not including the program.
	Args []string
	// Dir is the working directory. Empty means the current one.
	Dir string
	// Stdin, when non-empty, is written to the process's standard input.
	Stdin string
	// StdoutFile and StderrFile redirect the output streams to files.
	// Empty means the stream is inherited.
	StdoutFile string
	StderrFile string
}

// String renders the command the way a shell user would type it.
func (c Command) String() string {
	parts := append([]string{c.Path}, c.Args...)
	s := strings.Join(parts, " ")
	if c.StdoutFile != "" {
		s += " > " + c.StdoutFile
	}
	if c.StderrFile != "" {
		s += " 2> " + c.StderrFile
	}
	return s
}

// Runner executes commands. Invoker is the process-backed implementation;
// tests substitute recorders.
type Runner interface {
	Run(commandLine string) error
	RunCommand(cmd Command) error
}

// Invoker runs commands as child processes and waits for them.
type Invoker struct {
	// Shell interprets command lines passed to Run.
	Shell string
	// Logger receives an "exec:" line per command. Nil disables it.
	Logger *log.Logger
	// Stdout and Stderr are inherited by commands without redirects.
	Stdout io.Writer
	Stderr io.Writer
}

// New returns an Invoker using /bin/sh and the process's own streams.
func New(logger *log.Logger) *Invoker {
	return &Invoker{
		Shell:  "/bin/sh",
		Logger: logger,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes commandLine through the shell.
func (inv *Invoker) Run(commandLine string) error {
	inv.logf("exec: %s", commandLine)
	cmd := exec.Command(inv.shell(), "-c", commandLine)
	cmd.Stdout = inv.Stdout
	cmd.Stderr = inv.Stderr
	return wait(commandLine, cmd)
}

// RunCommand executes c directly, without a shell.
func (inv *Invoker) RunCommand(c Command) error {
	line := c.String()
	inv.logf("exec: %s", line)

	cmd := exec.Command(c.Path, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdout = inv.Stdout
	cmd.Stderr = inv.Stderr
	if c.Stdin != "" {
		cmd.Stdin = strings.NewReader(c.Stdin)
	}

	if c.StdoutFile != "" {
		f, err := os.Create(c.StdoutFile)
		if err != nil {
			return err
		}
		defer f.Close()
		cmd.Stdout = f
	}
	if c.StderrFile != "" {
		f, err := os.Create(c.StderrFile)
		if err != nil {
			return err
		}
		defer f.Close()
		cmd.Stderr = f
	}

	return wait(line, cmd)
}

func (inv *Invoker) shell() string {
	if inv.Shell == "" {
		return "/bin/sh"
	}
	return inv.Shell
}

func (inv *Invoker) logf(format string, args ...interface{}) {
	if inv.Logger != nil {
		inv.Logger.Printf(format, args...)
	}
}

func wait(line string, cmd *exec.Cmd) error {
	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExternalProcessFailure{
			Command:    line,
			ExitStatus: exitErr.ExitCode(),
			Err:        err,
		}
	}
	return &ExternalProcessFailure{
		Command:    line,
		ExitStatus: -1,
		Err:        err,
	}
}
