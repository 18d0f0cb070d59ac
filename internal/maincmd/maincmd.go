// Package maincmd implements the clox command-line driver: REPL mode,
// single-file mode, and the usage/exit-code contract around them.
package maincmd

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/nenuphar-lang/clox/lang/compiler"
	"github.com/nenuphar-lang/clox/lang/vm"
)

const binName = "clox"

// Exit codes, per the public CLI contract: 0 success, 64 usage, 65
// compile error, 70 runtime error, 74 file I/O error.
const (
	ExitUsage        mainer.ExitCode = 64
	ExitCompileError mainer.ExitCode = 65
	ExitRuntimeError mainer.ExitCode = 70
	ExitIOError      mainer.ExitCode = 74
)

var (
	shortUsage = fmt.Sprintf("usage: %s [path]\n", binName)

	longUsage = fmt.Sprintf(`usage: %s [path]
       %[1]s -h|--help
       %[1]s -v|--version

With no path, starts a REPL reading one line at a time from stdin. With a
single path, compiles and runs that file once.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
`, binName)
)

// Cmd is the clox command, wired through mna/mainer's flag/exit-code
// convention.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args []string
}

func (c *Cmd) SetArgs(args []string)      { c.args = args }
func (c *Cmd) SetFlags(_ map[string]bool) {}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if len(c.args) > 1 {
		return fmt.Errorf("%s: at most one path may be given", binName)
	}
	return nil
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvPrefix: binName + "_"}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return ExitUsage
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	mainer.CancelOnSignal(context.Background(), os.Interrupt)

	v := vm.New()
	v.Stdout = stdio.Stdout
	v.Stderr = stdio.Stderr
	defer v.Free()

	if len(c.args) == 1 {
		return runFile(v, c.args[0], stdio)
	}
	return repl(v, stdio)
}

func runFile(v *vm.VM, path string, stdio mainer.Stdio) mainer.ExitCode {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
		return ExitIOError
	}
	return interpret(v, string(src))
}

// repl reads one line at a time, up to 1024 bytes, interpreting each as
// its own program.
func repl(v *vm.VM, stdio mainer.Stdio) mainer.ExitCode {
	sc := bufio.NewScanner(stdio.Stdin)
	sc.Buffer(make([]byte, 1024), 1024)
	for {
		fmt.Fprint(stdio.Stdout, "> ")
		if !sc.Scan() {
			break
		}
		interpret(v, sc.Text())
	}
	return mainer.Success
}

func interpret(v *vm.VM, source string) mainer.ExitCode {
	fn, errs := compiler.Compile(v, source)
	if fn == nil {
		for _, e := range errs {
			fmt.Fprintln(v.Stderr, e)
		}
		return ExitCompileError
	}
	if v.Run(fn) == vm.InterpretRuntimeError {
		return ExitRuntimeError
	}
	return mainer.Success
}
