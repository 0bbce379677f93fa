package config

// DefaultFiles is the ordered list of files the built-in plan migrates.
// Forms are left out on purpose: they display the current date.
var DefaultFiles = []string{
	"src/components/Dashboard.tsx",
	"src/components/Debts.tsx",
	"src/components/Permutas.tsx",
	"src/components/Agenda.tsx",
	"src/components/Boletos.tsx",
	"src/components/Checks.tsx",
	"src/components/CashManagement.tsx",
	"src/components/Acertos.tsx",
	"src/components/Employees.tsx",
	"src/components/Taxes.tsx",
	"src/components/PixFees.tsx",
	"src/components/Reports.tsx",
	"src/components/reports/PayablesReport.tsx",
	"src/components/reports/ReceivablesReport.tsx",
	"src/components/reports/EnhancedReceivablesReport.tsx",
}

// Default returns the built-in plan
func Default() *Plan {
	return &Plan{
		Locale: "pt-BR",
		Helper: &Helper{
			Name:        "dbDateToDisplay",
			Module:      "dateUtils",
			DefaultPath: "../utils/dateUtils",
			PathRules: []PathRule{
				{Segment: "forms", Path: "../../utils/dateUtils"},
				{Segment: "reports", Path: "../../utils/dateUtils"},
			},
		},
		Files: append([]string(nil), DefaultFiles...),
	}
}
