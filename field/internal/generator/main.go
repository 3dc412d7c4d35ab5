package main

import (
	"fmt"
	"math/big"
	"math/bits"
	"os"
	"os/exec"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-mersenne")

	specs := []fieldSpecs{
		{Name: "mersenne31", Modulus: 1<<31 - 1},
	}

	for _, spec := range specs {
		cfg, err := spec.config()
		assertNoError(err, "for field \"%s\"", spec.Name)

		assertNoError(bgen.Generate(cfg, spec.Name, "templates",
			bavard.Entry{
				File:      fmt.Sprintf("../../%s/element.go", spec.Name),
				Templates: []string{"element.go.tmpl"},
			},
			bavard.Entry{
				File:      fmt.Sprintf("../../%s/element_test.go", spec.Name),
				Templates: []string{"element.test.go.tmpl"},
			},
		), "for field \"%s\"", spec.Name)
	}
	// run gofmt on whole directory
	runCmd("gofmt", "-w", "../../../")

	// run goimports on whole directory
	runCmd("goimports", "-w", "../../../")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

type fieldSpecs struct {
	Name    string
	Modulus uint32
}

// fieldConfig is the data handed to the templates.
type fieldConfig struct {
	Name         string
	Modulus      uint32
	SqrtExponent uint32 // (Modulus+1)/4; the modulus must be 3 mod 4
	Bits         int    // for a Mersenne modulus 2^k - 1, the exponent k
}

func (s fieldSpecs) config() (fieldConfig, error) {
	if s.Modulus >= 1<<31 {
		return fieldConfig{}, fmt.Errorf("modulus %d too large", s.Modulus)
	}

	if !big.NewInt(int64(s.Modulus)).ProbablyPrime(20) {
		return fieldConfig{}, fmt.Errorf("modulus %d is not prime", s.Modulus)
	}

	// The generated reduction folds high bits back onto the low k bits, which
	// is only valid for a Mersenne modulus 2^k - 1.
	k := bits.Len32(s.Modulus)
	if s.Modulus != 1<<k-1 {
		return fieldConfig{}, fmt.Errorf("modulus %d is not a Mersenne number", s.Modulus)
	}

	if s.Modulus%4 != 3 {
		return fieldConfig{}, fmt.Errorf("modulus %d is not 3 mod 4", s.Modulus)
	}

	return fieldConfig{
		Name:         s.Name,
		Modulus:      s.Modulus,
		SqrtExponent: (s.Modulus + 1) / 4,
		Bits:         k,
	}, nil
}

func assertNoError(err error, format string, args ...any) {
	if err != nil {
		fmt.Printf(format+"\n", args...)
		fmt.Println(err)
		os.Exit(1)
	}
}
