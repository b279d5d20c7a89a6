package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/medcatalog/pkg/validate"
)

// CLI-приложение для валидации карточек лекарств.
func main() {
	inputPath := flag.String("in", validate.StdinPath, "path to input (.json or .jsonl); \"-\" reads JSONL from stdin")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	format, err := validate.ParseFormat(*formatStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	res, err := validate.ValidateFile(context.Background(), validate.NewMedicineValidator(), *inputPath, format, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, res.Summary())
		os.Exit(1)
	}
	for _, e := range res.Errors {
		fmt.Fprintf(os.Stderr, "%v\n", e)
	}
	if res.Invalid > 0 {
		fmt.Fprintf(os.Stderr, "validation failed (%s)\n", res.Summary())
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", res.Summary())
}
