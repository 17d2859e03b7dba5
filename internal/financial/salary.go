package financial

import (
	"regexp"
	"strconv"
	"strings"
)

// salary_range dan salary adalah teks bebas (contoh: "₱140,000 - ₱196,000/month"),
// angka diambil dengan pola grup digit-dan-koma.
var salaryNumberRe = regexp.MustCompile(`[\d,]+`)

// ExtractMaxSalary mengambil angka terbesar dari sebuah salary range.
// Untuk range "140,000 - 196,000" hasilnya 196000.
func ExtractMaxSalary(salaryRange string) float64 {
	if salaryRange == "" {
		return 0
	}

	max := 0.0
	for _, m := range salaryNumberRe.FindAllString(salaryRange, -1) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
		if err != nil {
			continue
		}
		if v > max {
			max = v
		}
	}
	return max
}

// ExtractSalaryValue mengambil grup angka pertama dari nilai salary applicant.
func ExtractSalaryValue(salary string) float64 {
	if salary == "" {
		return 0
	}

	m := salaryNumberRe.FindString(salary)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}
