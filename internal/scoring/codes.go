package scoring

// TypeCodes returns the 16 canonical type codes, first poles before second
// poles in every position (ESTJ first, INFP last).
func TypeCodes() []string {
	codes := []string{""}
	for _, d := range AllDimensions() {
		first, second := d.Poles()
		next := make([]string, 0, len(codes)*2)
		for _, prefix := range codes {
			next = append(next, prefix+string(first), prefix+string(second))
		}
		codes = next
	}
	return codes
}

// ValidCode reports whether code is one of the 16 canonical type codes.
func ValidCode(code string) bool {
	if len(code) != 4 {
		return false
	}
	for i, d := range AllDimensions() {
		first, second := d.Poles()
		p := Pole(code[i : i+1])
		if p != first && p != second {
			return false
		}
	}
	return true
}

// PolesOf splits a valid code into its four pole letters.
func PolesOf(code string) []Pole {
	poles := make([]Pole, 0, len(code))
	for i := range code {
		poles = append(poles, Pole(code[i:i+1]))
	}
	return poles
}
