package taxyears

import (
	"time"

	"github.com/JacquesBronk/satax/internal/domain"
)

// year2024 is the 2023/24 tax year (1 March 2023 - 29 February 2024).
func year2024() *domain.TaxYearConfiguration {
	return &domain.TaxYearConfiguration{
		Year:      2024,
		ValidFrom: date(2023, time.March, 1),
		ValidTo:   date(2024, time.February, 29),
		Brackets: []domain.TaxBracket{
			{Min: d("0"), Max: dp("237100"), BaseTax: d("0"), Rate: d("0.18")},
			{Min: d("237101"), Max: dp("370500"), BaseTax: d("42678"), Rate: d("0.26")},
			{Min: d("370501"), Max: dp("512800"), BaseTax: d("77362"), Rate: d("0.31")},
			{Min: d("512801"), Max: dp("673000"), BaseTax: d("121475"), Rate: d("0.36")},
			{Min: d("673001"), Max: dp("857900"), BaseTax: d("179147"), Rate: d("0.39")},
			{Min: d("857901"), Max: dp("1817000"), BaseTax: d("251258"), Rate: d("0.41")},
			{Min: d("1817001"), BaseTax: d("644489"), Rate: d("0.45")},
		},
		Rebates: []domain.TaxRebate{
			{Kind: rebatePrimary, Amount: d("17235")},
			{Kind: rebateSecondary, Amount: d("9444"), MinAge: age(65)},
			{Kind: rebateTertiary, Amount: d("3145"), MinAge: age(75)},
		},
		Thresholds: []domain.TaxThreshold{
			{MaxAge: age(64), Amount: d("95750")},
			{MinAge: age(65), MaxAge: age(74), Amount: d("148217")},
			{MinAge: age(75), Amount: d("165689")},
		},
		MedicalAidCredit: domain.MedicalAidCredit{
			MainMember:          d("364"),
			FirstDependent:      d("364"),
			AdditionalDependent: d("246"),
		},
		UIF: domain.UifConfig{
			EmployeeRate:   d("0.01"),
			EmployerRate:   d("0.01"),
			MonthlyCeiling: d("17712"),
		},
		SDL: domain.SdlConfig{
			Rate:               d("0.01"),
			ExemptionThreshold: d("500000"),
		},
		ETI: domain.EtiConfig{
			MinAge:              18,
			MaxAge:              29,
			MaxQualifyingSalary: d("6500"),
			Bands: []domain.EtiBand{
				{MinSalary: d("0"), MaxSalary: d("2000"), FirstYearAmount: d("1500"), SecondYearAmount: d("750")},
				{MinSalary: d("2000"), MaxSalary: d("4500"), FirstYearAmount: d("1500"), SecondYearAmount: d("750")},
				{MinSalary: d("4500"), MaxSalary: d("6500"), FirstYearAmount: d("1500"), SecondYearAmount: d("750"), ReductionRate: dp("0.75")},
			},
		},
		RetirementLimits: domain.RetirementLimits{
			MaxPercentageOfIncome: d("0.275"),
			AnnualCap:             d("350000"),
		},
	}
}
