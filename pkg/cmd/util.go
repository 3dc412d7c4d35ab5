package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-mersenne/smallfield"
	"github.com/consensys/go-mersenne/smallfield/extensions"
)

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected uint32 flag, or panic if an error arises.
func getUint32(cmd *cobra.Command, flag string) uint32 {
	r, err := cmd.Flags().GetUint32(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected uint64 flag, or panic if an error arises.
func getUint64(cmd *cobra.Command, flag string) uint64 {
	r, err := cmd.Flags().GetUint64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Construct the base field selected by the --modulus flag.
func fieldFromFlags(cmd *cobra.Command) smallfield.Field {
	modulus := getUint32(cmd, "modulus")
	log.Debugf("using base field of order %d", modulus)

	return smallfield.New(modulus)
}

// Construct the quartic extension selected by the --modulus and --constant
// flags.
func towerFromFlags(cmd *cobra.Command) extensions.Field {
	constant := getUint64(cmd, "constant")
	log.Debugf("using tower constant %d", constant)

	return extensions.New(fieldFromFlags(cmd), constant)
}

// Parse a base field element given as a decimal integer, reducing it on
// entry.
func parseElement(f smallfield.Field, arg string) (smallfield.Element, error) {
	val, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return smallfield.Element{}, fmt.Errorf("invalid element %q: %w", arg, err)
	}

	x := f.NewElement(val)
	if uint64(f.ToUint32(x)) != val {
		log.Debugf("reduced %d to %s (mod %d)", val, x, f.Modulus())
	}

	return x, nil
}

// Parse an extension field element given as four comma-separated decimal
// coordinates, e.g. "1,2,3,4".
func parseTuple(f extensions.Field, arg string) (extensions.E4, error) {
	parts := strings.Split(arg, ",")
	coords := make([]uint64, len(parts))

	for i, p := range parts {
		val, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return extensions.E4{}, fmt.Errorf("invalid coordinate %q: %w", p, err)
		}

		coords[i] = val
	}

	return f.FromUint64s(coords)
}

// Parse an exponent given as a decimal integer.
func parseExponent(arg string) (uint64, error) {
	val, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid exponent %q: %w", arg, err)
	}

	return val, nil
}

// Report a usage error and exit.
func fail(cmd *cobra.Command, err error) {
	fmt.Println(err)
	fmt.Println(cmd.UsageString())
	os.Exit(1)
}
