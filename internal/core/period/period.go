// Package period parses free-text payroll queries into structured period descriptors.
// Extraction is pure and total: absence of information yields a default-year
// descriptor with no month, quarter, or period key
package period

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Descriptor is the structured period a query resolved to
type Descriptor struct {
	// Key is the canonical YYYY-MM period key when one was explicit in the
	// text or could be synthesized from year+month. Empty otherwise
	Key string

	// Year is always set, falling back to the extractor default
	Year int

	// Month is 1-12 when a month was found, 0 otherwise.
	// An out-of-range month from a MM/YYYY literal is preserved so callers
	// can reject it explicitly
	Month int

	// Quarter is 1-4 when an ordinal quarter expression was found, 0 otherwise
	Quarter int
}

// HasKey reports whether an explicit or synthesized period key is present
func (d Descriptor) HasKey() bool { return d.Key != "" }

// HasMonth reports whether a month was extracted
func (d Descriptor) HasMonth() bool { return d.Month != 0 }

// HasQuarter reports whether a quarter was extracted
func (d Descriptor) HasQuarter() bool { return d.Quarter != 0 }

// MonthValid reports whether the extracted month, if any, is in 1..12
func (d Descriptor) MonthValid() bool { return d.Month == 0 || (d.Month >= 1 && d.Month <= 12) }

// QuarterValid reports whether the extracted quarter, if any, is in 1..4
func (d Descriptor) QuarterValid() bool { return d.Quarter == 0 || (d.Quarter >= 1 && d.Quarter <= 4) }

var (
	reMonthYear = regexp.MustCompile(`(\d{1,2})/(\d{4})`)
	reISOKey    = regexp.MustCompile(`(\d{4})-(\d{2})`)
	reBareYear  = regexp.MustCompile(`(20\d{2})`)
	reQuarter   = regexp.MustCompile(`(\d+)[º°]?\s*trimestre`)
)

// monthPattern pairs a name regex with its month number.
// Order is fixed; the first pattern that matches wins
type monthPattern struct {
	re    *regexp.Regexp
	month int
}

var monthPatterns = []monthPattern{
	{regexp.MustCompile(`janeiro|jan`), 1},
	{regexp.MustCompile(`fevereiro|fev`), 2},
	{regexp.MustCompile(`março|mar`), 3},
	{regexp.MustCompile(`abril|abr`), 4},
	{regexp.MustCompile(`maio|mai`), 5},
	{regexp.MustCompile(`junho|jun`), 6},
	{regexp.MustCompile(`julho|jul`), 7},
	{regexp.MustCompile(`agosto|ago`), 8},
	{regexp.MustCompile(`setembro|set`), 9},
	{regexp.MustCompile(`outubro|out`), 10},
	{regexp.MustCompile(`novembro|nov`), 11},
	{regexp.MustCompile(`dezembro|dez`), 12},
}

// Extractor parses period expressions with a configured default year
type Extractor struct {
	defaultYear int
}

// New constructs an Extractor. defaultYear is used when the text carries no
// year expression
func New(defaultYear int) *Extractor {
	return &Extractor{defaultYear: defaultYear}
}

// Extract parses text into a Descriptor. Precedence, first match returns:
// MM/YYYY literal, then YYYY-MM literal, then the composable path of
// bare year + ordinal quarter + named Portuguese month
func (e *Extractor) Extract(text string) Descriptor {
	lower := strings.ToLower(text)

	if m := reMonthYear.FindStringSubmatch(text); m != nil {
		month, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[2])
		return Descriptor{
			Key:   Key(year, month),
			Year:  year,
			Month: month,
		}
	}

	if m := reISOKey.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		return Descriptor{
			Key:   Key(year, month),
			Year:  year,
			Month: month,
		}
	}

	d := Descriptor{Year: e.defaultYear}
	if m := reBareYear.FindStringSubmatch(text); m != nil {
		d.Year, _ = strconv.Atoi(m[1])
	}
	if m := reQuarter.FindStringSubmatch(lower); m != nil {
		d.Quarter, _ = strconv.Atoi(m[1])
	}
	for _, mp := range monthPatterns {
		if mp.re.MatchString(lower) {
			d.Month = mp.month
			break
		}
	}
	if d.Month != 0 {
		d.Key = Key(d.Year, d.Month)
	}
	return d
}

// Key renders the canonical YYYY-MM period key
func Key(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// QuarterMonths returns the first and last month of quarter q (1-4)
func QuarterMonths(q int) (first, last int) {
	first = 3*(q-1) + 1
	return first, first + 2
}

// SplitKey parses a YYYY-MM key into year and month.
// Malformed keys return (0, 0, false)
func SplitKey(key string) (year, month int, ok bool) {
	if len(key) != 7 || key[4] != '-' {
		return 0, 0, false
	}
	y, err := strconv.Atoi(key[:4])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(key[5:])
	if err != nil {
		return 0, 0, false
	}
	return y, m, true
}
