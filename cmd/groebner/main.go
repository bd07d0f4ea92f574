// Command groebner is a CLI driver for the decision layer of spec
// section 4.5, implementing the textual input-stream protocol of
// section 6: read an integer count, then that many polynomial lines,
// build an ideal, and act on it.
//
// No teacher analogue exists for a command-line entry point (the
// teacher, github.com/fumin/nag, is a library exercised through
// Example tests); the cobra.Command root/subcommand structure and
// sirupsen/logrus error reporting are enriched from
// _examples/Consensys-go-corset/cmd/testgen/main.go, the only
// CLI-shaped idiom in the retrieved example pack.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fumin/groebner/decide"
	"github.com/fumin/groebner/field"
	"github.com/fumin/groebner/gberr"
	"github.com/fumin/groebner/ideal"
	"github.com/fumin/groebner/monomial"
	"github.com/fumin/groebner/parse"
	"github.com/fumin/groebner/polynomial"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				log.WithError(err).Error("groebner: aborted")
			} else {
				log.Errorf("groebner: aborted: %v", r)
			}
			os.Exit(1)
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("groebner")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("order", "lex", "monomial order: lex, deglex, or gradedrevlex")
	rootCmd.PersistentFlags().Int64("modulus", 0, "prime modulus p; 0 selects the rational field")

	finiteCmd.Flags().Int("vars", 0, "ambient variable count (0 infers it from the input)")

	rootCmd.AddCommand(canonicalizeCmd, existsCmd, finiteCmd, radicalCmd, equivalentCmd)
}

var rootCmd = &cobra.Command{
	Use:   "groebner",
	Short: "Compute Groebner bases and decide properties of polynomial ideals.",
}

var canonicalizeCmd = &cobra.Command{
	Use:   "canonicalize",
	Short: "Read a polynomial system from stdin and print its canonical Groebner basis.",
	Run: func(cmd *cobra.Command, args []string) {
		order, modulus := resolveFieldFlags(cmd)
		if modulus == 0 {
			canonicalize(field.NewRational(0, 1), order)
		} else {
			canonicalize(field.NewPrimeField(modulus).Element(0), order)
		}
	},
}

var existsCmd = &cobra.Command{
	Use:   "exists",
	Short: "Read a polynomial system from stdin and report whether it has a solution.",
	Run: func(cmd *cobra.Command, args []string) {
		order, modulus := resolveFieldFlags(cmd)
		if modulus == 0 {
			solutionsExist(field.NewRational(0, 1), order)
		} else {
			solutionsExist(field.NewPrimeField(modulus).Element(0), order)
		}
	},
}

var finiteCmd = &cobra.Command{
	Use:   "finite",
	Short: "Read a polynomial system from stdin and report whether its variety is finite.",
	Run: func(cmd *cobra.Command, args []string) {
		order, modulus := resolveFieldFlags(cmd)
		n, err := cmd.Flags().GetInt("vars")
		if err != nil {
			panic(err)
		}
		if modulus == 0 {
			solutionsFinite(field.NewRational(0, 1), order, n)
		} else {
			solutionsFinite(field.NewPrimeField(modulus).Element(0), order, n)
		}
	},
}

var radicalCmd = &cobra.Command{
	Use:   "radical",
	Short: "Read a candidate polynomial then a generating system from stdin and report radical membership.",
	Run: func(cmd *cobra.Command, args []string) {
		order, modulus := resolveFieldFlags(cmd)
		if modulus == 0 {
			radicalContains(field.NewRational(0, 1), order)
		} else {
			radicalContains(field.NewPrimeField(modulus).Element(0), order)
		}
	},
}

var equivalentCmd = &cobra.Command{
	Use:   "equivalent",
	Short: "Read two polynomial systems from stdin and report whether they are equivalent.",
	Run: func(cmd *cobra.Command, args []string) {
		order, modulus := resolveFieldFlags(cmd)
		if modulus == 0 {
			systemsEquivalent(field.NewRational(0, 1), order)
		} else {
			systemsEquivalent(field.NewPrimeField(modulus).Element(0), order)
		}
	},
}

func resolveFieldFlags(cmd *cobra.Command) (monomial.Order, int64) {
	orderName, err := cmd.Flags().GetString("order")
	if err != nil {
		panic(err)
	}
	order, err := parseOrder(orderName)
	if err != nil {
		panic(err)
	}
	modulus, err := cmd.Flags().GetInt64("modulus")
	if err != nil {
		panic(err)
	}
	return order, modulus
}

func parseOrder(name string) (monomial.Order, error) {
	switch strings.ToLower(name) {
	case "lex":
		return monomial.Lex, nil
	case "deglex":
		return monomial.Deglex, nil
	case "gradedrevlex":
		return monomial.GradedRevLex, nil
	default:
		return nil, &gberr.OutOfRangeError{Op: "parseOrder", Message: fmt.Sprintf("unknown monomial order %q", name)}
	}
}

func canonicalize[F field.Field[F]](f F, order monomial.Order) {
	scanner := bufio.NewScanner(os.Stdin)
	polys := readSystem(f, order, scanner)
	id := ideal.New(f, order, polys...)
	id.Canonicalize()
	fmt.Println(id.String())
}

func solutionsExist[F field.Field[F]](f F, order monomial.Order) {
	scanner := bufio.NewScanner(os.Stdin)
	polys := readSystem(f, order, scanner)
	fmt.Println(decide.SolutionsExist(f, order, polys))
}

func solutionsFinite[F field.Field[F]](f F, order monomial.Order, n int) {
	scanner := bufio.NewScanner(os.Stdin)
	polys := readSystem(f, order, scanner)
	fmt.Println(decide.SolutionsFinite(f, order, polys, n))
}

func radicalContains[F field.Field[F]](f F, order monomial.Order) {
	scanner := bufio.NewScanner(os.Stdin)
	candidateLine := readLine(scanner)
	candidate, err := parse.ParsePolynomial(candidateLine, f, order)
	if err != nil {
		panic(err)
	}
	polys := readSystem(f, order, scanner)
	fmt.Println(decide.RadicalContains(f, order, candidate, polys))
}

func systemsEquivalent[F field.Field[F]](f F, order monomial.Order) {
	scanner := bufio.NewScanner(os.Stdin)
	first := readSystem(f, order, scanner)
	second := readSystem(f, order, scanner)
	fmt.Println(decide.SystemsEquivalent(f, order, first, second))
}

func readLine(scanner *bufio.Scanner) string {
	if !scanner.Scan() {
		panic(&gberr.ParseError{Message: "unexpected end of input"})
	}
	return scanner.Text()
}

// readSystem reads the count n, then n polynomial lines, per spec
// section 6's input-stream protocol, matching
// original_source/examples/io_example.cpp.
func readSystem[F field.Field[F]](f F, order monomial.Order, scanner *bufio.Scanner) []*polynomial.Polynomial[F] {
	countLine := readLine(scanner)
	n, err := strconv.Atoi(strings.TrimSpace(countLine))
	if err != nil {
		panic(&gberr.ParseError{Input: countLine, Message: "expected an integer polynomial count"})
	}
	polys := make([]*polynomial.Polynomial[F], 0, n)
	for i := 0; i < n; i++ {
		line := readLine(scanner)
		p, err := parse.ParsePolynomial(line, f, order)
		if err != nil {
			panic(err)
		}
		polys = append(polys, p)
	}
	return polys
}
