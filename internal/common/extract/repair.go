// internal/common/extract/repair.go
package extract

import "regexp"

var (
	trailingObjectComma = regexp.MustCompile(`,\s*}`)
	trailingArrayComma  = regexp.MustCompile(`,\s*]`)
)

// RepairTrailingCommas removes a comma that directly precedes a closing
// brace or bracket, across whitespace. Text generation models emit this
// defect constantly; strict JSON parsers reject it. Pure text transform,
// no parsing involved.
func RepairTrailingCommas(text string) string {
	text = trailingObjectComma.ReplaceAllString(text, "}")
	text = trailingArrayComma.ReplaceAllString(text, "]")
	return text
}
