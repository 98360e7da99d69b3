package citation

import (
	"testing"

	"github.com/lehigh-university-libraries/medline/dtd"
)

func TestDateInfo(t *testing.T) {
	tests := []struct {
		name      string
		date      *dtd.Date
		yearOnly  bool
		parseTime bool
		want      string
	}{
		{
			name: "nil date",
			date: nil,
			want: "",
		},
		{
			name: "year only output",
			date: &dtd.Date{Year: "2019", Month: "Dec", Day: "15"},
			yearOnly: true,
			want:     "2019",
		},
		{
			name: "year month day",
			date: &dtd.Date{Year: "2019", Month: "Dec", Day: "15"},
			want: "2019-12-15",
		},
		{
			name: "numeric month zero padded",
			date: &dtd.Date{Year: "2019", Month: "3", Day: "4"},
			want: "2019-03-04",
		},
		{
			name: "month without day",
			date: &dtd.Date{Year: "1975", Month: "Jan"},
			want: "1975-01",
		},
		{
			name: "day without month is ignored",
			date: &dtd.Date{Year: "1975", Day: "15"},
			want: "1975",
		},
		{
			name: "unrecognized month falls back to year",
			date: &dtd.Date{Year: "1998", Month: "Spring"},
			want: "1998",
		},
		{
			name:      "time appended when requested",
			date:      &dtd.Date{Year: "2019", Month: "12", Day: "15", Hour: "9", Minute: "30"},
			parseTime: true,
			want:      "2019-12-15 09:30",
		},
		{
			name:      "hour without minute",
			date:      &dtd.Date{Year: "2019", Month: "12", Day: "15", Hour: "9"},
			parseTime: true,
			want:      "2019-12-15 09",
		},
		{
			name: "time ignored without parseTime",
			date: &dtd.Date{Year: "2019", Month: "12", Day: "15", Hour: "9", Minute: "30"},
			want: "2019-12-15",
		},
		{
			name: "medline date fallback",
			date: &dtd.Date{MedlineDate: "1975 Jan-Feb"},
			want: "1975",
		},
		{
			name: "medline date fallback year only",
			date: &dtd.Date{MedlineDate: "1998 Dec-1999 Jan"},
			yearOnly: true,
			want:     "1998",
		},
		{
			name: "medline date without a year",
			date: &dtd.Date{MedlineDate: "no year here"},
			want: "",
		},
		{
			name: "empty date",
			date: &dtd.Date{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dateInfo(tt.date, tt.yearOnly, tt.parseTime)
			if got != tt.want {
				t.Errorf("dateInfo() = %q, want %q", got, tt.want)
			}
		})
	}
}
