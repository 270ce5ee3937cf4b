package models

// TrainingPackage is a fixed-price course offering. The catalogue is static
// and priced in NPR.
type TrainingPackage struct {
	Days         string `json:"days"`
	TrainingDays int    `json:"training"`
	Hours        int    `json:"hours"`
	Price        string `json:"price"`
}

// TrainingPackages returns the current package catalogue.
func TrainingPackages() []TrainingPackage {
	return []TrainingPackage{
		{Days: "1 Day", TrainingDays: 1, Hours: 2, Price: "NPR 2,000"},
		{Days: "3 Days", TrainingDays: 3, Hours: 6, Price: "NPR 5,500"},
		{Days: "1 Week", TrainingDays: 7, Hours: 14, Price: "NPR 12,000"},
		{Days: "1 Month", TrainingDays: 30, Hours: 60, Price: "NPR 40,000"},
		{Days: "2 Months", TrainingDays: 60, Hours: 120, Price: "NPR 75,000"},
	}
}
