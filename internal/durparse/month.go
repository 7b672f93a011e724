package durparse

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

func monthNumber(name string) (int, bool) {
	for i, n := range monthNames {
		if n == name {
			return i + 1, true
		}
	}
	return 0, false
}
