// codiesp_eval scores a CodiEsp run against a gold standard and reports precision, recall and F1 per clinical case
// and micro-averaged.
package main

import (
	"fmt"
	"github.com/alexflint/go-arg"
	goerrors "github.com/go-errors/errors"
	"github.com/hscells/codiesp/output"
	"log"
	"os"
	"strings"
)

var (
	name    = "codiesp_eval"
	version = "15.Oct.2026"
	author  = "Harry Scells"
)

type args struct {
	Subtask    string   `help:"CodiEsp subtask to evaluate (D, P, X, or 3 for span matching without valid codes)" arg:"-s,required"`
	Gold       string   `help:"Path to gold standard file" arg:"-g,required"`
	Pred       string   `help:"Path to predictions file" arg:"-p,required"`
	ValidCodes []string `help:"Path to a valid codes file (may be repeated)" arg:"-c,separate"`
	Tolerance  int      `help:"Characters a predicted span may overrun the reference by on each side (X and 3 only, default 10)" arg:"-t"`
	Format     string   `help:"Output format (text/json/csv)" arg:"-f"`
	Summary    bool     `help:"Output a precision|recall|f1 line after the report"`
	MAP        bool     `help:"Also compute MAP (D and P only)"`
	Progress   bool     `help:"Show a progress bar on stderr while scoring"`
	Config     string   `help:"Path to TOML config file (default ~/.codiesp_eval)"`
	Verbose    bool     `help:"Print stack traces for errors" arg:"-v"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf(`%s
@ %s
# %s`, name, author, version)
}

func fatal(err error, verbose bool) {
	if verbose {
		log.Println(goerrors.Wrap(err, 1).ErrorStack())
	}
	log.Fatalln(err)
}

func main() {
	var args args
	args.Tolerance = -1
	arg.MustParse(&args)

	c, err := loadConfig(args.Config)
	if err != nil {
		fatal(err, args.Verbose)
	}
	args.merge(c)
	if len(args.Format) == 0 {
		args.Format = "text"
	}

	formatter, ok := output.Formatters[strings.ToLower(args.Format)]
	if !ok {
		log.Fatalf("unrecognised output format %s\n", args.Format)
	}

	report, diagnostics, err := evaluate(args)
	for _, d := range diagnostics {
		log.Printf("warning: %s\n", d)
	}
	if err != nil {
		fatal(err, args.Verbose)
	}

	s, err := formatter(report)
	if err != nil {
		fatal(err, args.Verbose)
	}
	_, err = os.Stdout.WriteString(s)
	if err != nil {
		log.Fatalln(err)
	}
}
