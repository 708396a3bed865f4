package story

type AgeGroup string

const (
	Age4to6   AgeGroup = "4-6 yrs"
	Age7to9   AgeGroup = "7-9 yrs"
	Age10to12 AgeGroup = "10-12 yrs"
)

var AllAgeGroups = []AgeGroup{
	Age4to6,
	Age7to9,
	Age10to12,
}

func (a AgeGroup) IsValid() bool {
	for _, g := range AllAgeGroups {
		if a == g {
			return true
		}
	}
	return false
}
