package taxyears

import (
	"time"

	"github.com/JacquesBronk/satax/internal/domain"
)

// year2023 is the 2022/23 tax year (1 March 2022 - 28 February 2023).
func year2023() *domain.TaxYearConfiguration {
	return &domain.TaxYearConfiguration{
		Year:      2023,
		ValidFrom: date(2022, time.March, 1),
		ValidTo:   date(2023, time.February, 28),
		Brackets: []domain.TaxBracket{
			{Min: d("0"), Max: dp("226000"), BaseTax: d("0"), Rate: d("0.18")},
			{Min: d("226001"), Max: dp("353100"), BaseTax: d("40680"), Rate: d("0.26")},
			{Min: d("353101"), Max: dp("488700"), BaseTax: d("73726"), Rate: d("0.31")},
			{Min: d("488701"), Max: dp("641400"), BaseTax: d("115762"), Rate: d("0.36")},
			{Min: d("641401"), Max: dp("817600"), BaseTax: d("170734"), Rate: d("0.39")},
			{Min: d("817601"), Max: dp("1731600"), BaseTax: d("239452"), Rate: d("0.41")},
			{Min: d("1731601"), BaseTax: d("614192"), Rate: d("0.45")},
		},
		Rebates: []domain.TaxRebate{
			{Kind: rebatePrimary, Amount: d("16425")},
			{Kind: rebateSecondary, Amount: d("9000"), MinAge: age(65)},
			{Kind: rebateTertiary, Amount: d("2997"), MinAge: age(75)},
		},
		Thresholds: []domain.TaxThreshold{
			{MaxAge: age(64), Amount: d("91250")},
			{MinAge: age(65), MaxAge: age(74), Amount: d("141250")},
			{MinAge: age(75), Amount: d("157900")},
		},
		MedicalAidCredit: domain.MedicalAidCredit{
			MainMember:          d("347"),
			FirstDependent:      d("347"),
			AdditionalDependent: d("234"),
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
