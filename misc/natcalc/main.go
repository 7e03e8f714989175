package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	num "github.com/shabbyrobe/go-bignum"
	"github.com/spf13/cobra"
)

// natcalc evaluates a single operation on arbitrary-size natural numbers:
//
//	natcalc add 18446744073709551615 1
//	natcalc --dump pow 2 100
//
// Operands are decimal. With --dump, the result's internal representation is
// printed after the value.

var dumper = spew.ConfigState{Indent: "  ", DisableMethods: true}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(out)
	return cmd.Execute()
}

type calc struct {
	dump bool
}

func newRootCmd() *cobra.Command {
	c := &calc{}

	root := &cobra.Command{
		Use:           "natcalc",
		Short:         "Arbitrary-size natural number calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&c.dump, "dump", false, "Dump the internal representation of the result")

	binary := func(use, short string, op func(a, b num.Natural) (num.Natural, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <a> <b>",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, b, err := parsePair(args)
				if err != nil {
					return err
				}
				r, err := op(a, b)
				if err != nil {
					return err
				}
				return c.print(cmd.OutOrStdout(), r)
			},
		}
	}

	shift := func(use, short string, op func(a num.Natural, s uint) num.Natural) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <a> <bits>",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := num.NaturalFromString(args[0])
				if err != nil {
					return err
				}
				s, err := strconv.ParseUint(args[1], 10, 0)
				if err != nil {
					return fmt.Errorf("natcalc: shift amount %q invalid: %w", args[1], err)
				}
				return c.print(cmd.OutOrStdout(), op(a, uint(s)))
			},
		}
	}

	root.AddCommand(
		binary("add", "Print a + b", func(a, b num.Natural) (num.Natural, error) {
			return a.Add(b), nil
		}),
		binary("sub", "Print a - b; fails if b > a", func(a, b num.Natural) (num.Natural, error) {
			d, ok := a.Sub(b)
			if !ok {
				return d, fmt.Errorf("natcalc: %s - %s underflows", a, b)
			}
			return d, nil
		}),
		binary("mul", "Print a * b", func(a, b num.Natural) (num.Natural, error) {
			return a.Mul(b), nil
		}),
		binary("quo", "Print a / b, rounded down", func(a, b num.Natural) (num.Natural, error) {
			if b.IsZero() {
				return b, fmt.Errorf("natcalc: division by zero")
			}
			return a.Quo(b), nil
		}),
		binary("rem", "Print a % b", func(a, b num.Natural) (num.Natural, error) {
			if b.IsZero() {
				return b, fmt.Errorf("natcalc: division by zero")
			}
			return a.Rem(b), nil
		}),
		binary("pow", "Print a ** b", func(a, b num.Natural) (num.Natural, error) {
			return a.Pow(b), nil
		}),
		shift("lsh", "Print a << bits", func(a num.Natural, s uint) num.Natural {
			return a.Lsh(num.NaturalFrom(s))
		}),
		shift("rsh", "Print a >> bits", func(a num.Natural, s uint) num.Natural {
			return a.Rsh(s)
		}),
		&cobra.Command{
			Use:   "cmp <a> <b>",
			Short: "Print -1, 0 or 1 as a is less than, equal to or greater than b",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, b, err := parsePair(args)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), a.Cmp(b))
				return err
			},
		},
		&cobra.Command{
			Use:   "bitlen <a>",
			Short: "Print the number of bits needed to represent a",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := num.NaturalFromString(args[0])
				if err != nil {
					return err
				}
				return c.print(cmd.OutOrStdout(), a.BitLen())
			},
		},
		&cobra.Command{
			Use:   "bits <a>",
			Short: "Print the bits of a, most significant first",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := num.NaturalFromString(args[0])
				if err != nil {
					return err
				}
				bs := make([]byte, 0, 64)
				for b := range a.Bits() {
					if b {
						bs = append(bs, '1')
					} else {
						bs = append(bs, '0')
					}
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bs))
				return err
			},
		},
	)

	return root
}

func parsePair(args []string) (a, b num.Natural, err error) {
	if a, err = num.NaturalFromString(args[0]); err != nil {
		return a, b, err
	}
	if b, err = num.NaturalFromString(args[1]); err != nil {
		return a, b, err
	}
	return a, b, nil
}

func (c *calc) print(w io.Writer, n num.Natural) error {
	if _, err := fmt.Fprintln(w, n); err != nil {
		return err
	}
	if c.dump {
		dumper.Fdump(w, n)
	}
	return nil
}
