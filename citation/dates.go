package citation

import (
	"regexp"
	"strings"

	"github.com/lehigh-university-libraries/medline/dtd"
	"github.com/lehigh-university-libraries/medline/helpers"
)

var yearRegex = regexp.MustCompile(`\d{4}`)

// dateInfo renders a date-bearing node with graduated precision. Finer
// components are only consulted while the chain holds: year, then month,
// then day, then (with parseTime) hour and minute. The result is the longest
// obtainable prefix: "YYYY", "YYYY-MM", "YYYY-MM-DD", or "YYYY-MM-DD HH:MM".
// A node without a Year child falls back to the first four-digit run of its
// free-text MedlineDate, or empty string.
func dateInfo(d *dtd.Date, yearOnly, parseTime bool) string {
	if d == nil {
		return ""
	}

	year := d.Year
	if year == "" {
		return yearRegex.FindString(d.MedlineDate)
	}
	if yearOnly {
		return year
	}

	var month, day, hour, minute string
	if d.Month != "" {
		month, _ = helpers.MonthOrDay(d.Month)
		if d.Day != "" {
			day, _ = helpers.MonthOrDay(d.Day)
			if d.Hour != "" {
				hour, _ = helpers.MonthOrDay(d.Hour)
				if d.Minute != "" {
					minute, _ = helpers.MonthOrDay(d.Minute)
				}
			}
		}
	}

	if month == "" {
		return year
	}
	parts := []string{year, month}
	if day != "" {
		parts = append(parts, day)
	}
	date := strings.Join(parts, "-")

	if parseTime && hour != "" {
		clock := hour
		if minute != "" {
			clock += ":" + minute
		}
		date += " " + clock
	}
	return date
}

// parsePubDate renders the journal issue's publication date.
func parsePubDate(journal *dtd.Journal, yearOnly bool) string {
	if journal == nil || journal.JournalIssue == nil {
		return ""
	}
	return dateInfo(journal.JournalIssue.PubDate, yearOnly, false)
}

func parseCompletionDate(medline *dtd.MedlineCitation, yearOnly bool) string {
	return dateInfo(medline.DateCompleted, yearOnly, false)
}

func parseModificationDate(medline *dtd.MedlineCitation, yearOnly bool) string {
	return dateInfo(medline.DateRevised, yearOnly, false)
}
