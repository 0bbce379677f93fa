package config_test

import (
	"fmt"

	"github.com/EduardoJoaoTurkiewicz/datefix/pkg/config"
)

func ExampleDefault() {
	plan := config.Default()

	fmt.Println(plan)
	fmt.Println(plan.Files[0])

	// Output:
	// toLocaleDateString('pt-BR') -> dbDateToDisplay from dateUtils (15 entries)
	// src/components/Dashboard.tsx
}
