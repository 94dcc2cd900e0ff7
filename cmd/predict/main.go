// Command predict runs the gender prediction quizzes from a terminal.
package main

import (
	"os"

	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/random"
)

func main() {
	if err := newRootCmd(random.Default()).Execute(); err != nil {
		os.Exit(1)
	}
}
