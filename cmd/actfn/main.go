package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/sw965/activation"
	"github.com/sw965/activation/gradcheck"
	"github.com/sw965/activation/scalar"
)

const usage = `usage: actfn <command> [flags]

commands:
  names   list the activation names in catalog order
  table   print f(x) or f'(x) over an evenly spaced grid
  check   compare analytic derivatives with finite differences
`

func main() {
	log.SetFlags(0)
	log.SetPrefix("actfn: ")

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "names":
		err = runNames(os.Stdout)
	case "table":
		err = runTable(os.Stdout, args)
	case "check":
		err = runCheck(os.Stdout, args)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runNames(w io.Writer) error {
	for _, name := range activation.Names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

func runTable(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("table", flag.ContinueOnError)
	name := fs.String("name", "", "activation to print (default: all)")
	min := fs.Float64("min", -3, "first x")
	max := fs.Float64("max", 3, "last x")
	n := fs.Int("n", 13, "number of points")
	derivative := fs.Bool("derivative", false, "print f'(x) instead of f(x)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	names := activation.Names
	if *name != "" {
		names = []activation.Name{activation.Name(*name)}
	}
	funcs := make([]scalar.Func, len(names))
	for i, nm := range names {
		f, err := scalar.Lookup(nm)
		if err != nil {
			return err
		}
		funcs[i] = f
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "x\t")
	for _, nm := range names {
		fmt.Fprintf(tw, "%s\t", nm)
	}
	fmt.Fprintln(tw)
	for _, x := range gradcheck.Grid(*n, *min, *max) {
		fmt.Fprintf(tw, "%.4g\t", x)
		for _, f := range funcs {
			fmt.Fprintf(tw, "%.6g\t", f(x, *derivative))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func runCheck(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	min := fs.Float64("min", -10, "lower bound of sampled x")
	max := fs.Float64("max", 10, "upper bound of sampled x")
	n := fs.Int("n", 1000, "number of samples")
	seed := fs.Int64("seed", 1, "mt19937 seed")
	tol := fs.Float64("tol", 1e-5, "tolerance on |f' - numerical f'|")
	if err := fs.Parse(args); err != nil {
		return err
	}

	xs := gradcheck.Sample(*n, *min, *max, *seed)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "name\tmax diff\tat x\tok")
	for _, r := range gradcheck.CheckAll(scalar.Functions, xs) {
		fmt.Fprintf(tw, "%s\t%.3g\t%.4g\t%t\n", r.Name, r.MaxAbsDiff, r.ArgMax, r.OK(*tol))
	}
	return tw.Flush()
}
