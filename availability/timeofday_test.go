package availability

import (
	"reflect"
	"testing"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{input: "00:00", want: 0},
		{input: "09:00", want: 540},
		{input: "12:30", want: 750},
		{input: "23:59", want: 1439},
		{input: "24:00", wantErr: true},
		{input: "09:60", wantErr: true},
		{input: "9:00", wantErr: true},
		{input: "09:0", wantErr: true},
		{input: "0900", wantErr: true},
		{input: "ab:cd", wantErr: true},
		{input: "", wantErr: true},
		{input: "-1:00", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTimeOfDay(%q): expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q): unexpected error %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeOfDay(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	for _, s := range []string{"00:00", "09:05", "17:00", "23:59"} {
		tod, err := ParseTimeOfDay(s)
		if err != nil {
			t.Fatalf("ParseTimeOfDay(%q): %v", s, err)
		}
		if tod.String() != s {
			t.Errorf("String() = %q, want %q", tod.String(), s)
		}
	}
}

func TestTimeOfDayOrdering(t *testing.T) {
	early, _ := ParseTimeOfDay("08:00")
	late, _ := ParseTimeOfDay("10:00")

	if !early.Before(late) {
		t.Error("08:00 should be before 10:00")
	}
	if !late.After(early) {
		t.Error("10:00 should be after 08:00")
	}
	if early.Before(early) {
		t.Error("a time must not be before itself")
	}
}

func mustRange(t *testing.T, start, end string) TimeRange {
	t.Helper()
	s, err := ParseTimeOfDay(start)
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q): %v", start, err)
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q): %v", end, err)
	}
	return TimeRange{Start: s, End: e}
}

func TestTimeRangeSubtract(t *testing.T) {
	tests := []struct {
		name  string
		base  [2]string
		block [2]string
		want  [][2]string
	}{
		{
			name:  "block in the middle splits the range",
			base:  [2]string{"09:00", "17:00"},
			block: [2]string{"12:00", "13:00"},
			want:  [][2]string{{"09:00", "12:00"}, {"13:00", "17:00"}},
		},
		{
			name:  "block covers the whole range",
			base:  [2]string{"09:00", "17:00"},
			block: [2]string{"09:00", "17:00"},
			want:  nil,
		},
		{
			name:  "block covers more than the range",
			base:  [2]string{"09:00", "17:00"},
			block: [2]string{"08:00", "18:00"},
			want:  nil,
		},
		{
			name:  "block overlaps the start",
			base:  [2]string{"09:00", "17:00"},
			block: [2]string{"08:00", "11:00"},
			want:  [][2]string{{"11:00", "17:00"}},
		},
		{
			name:  "block overlaps the end",
			base:  [2]string{"09:00", "17:00"},
			block: [2]string{"15:00", "18:00"},
			want:  [][2]string{{"09:00", "15:00"}},
		},
		{
			name:  "disjoint block before",
			base:  [2]string{"09:00", "17:00"},
			block: [2]string{"06:00", "08:00"},
			want:  [][2]string{{"09:00", "17:00"}},
		},
		{
			name:  "disjoint block after",
			base:  [2]string{"09:00", "17:00"},
			block: [2]string{"18:00", "20:00"},
			want:  [][2]string{{"09:00", "17:00"}},
		},
		{
			name:  "touching block leaves the range intact",
			base:  [2]string{"09:00", "17:00"},
			block: [2]string{"17:00", "19:00"},
			want:  [][2]string{{"09:00", "17:00"}},
		},
		{
			name:  "block aligned with the start drops the empty remainder",
			base:  [2]string{"09:00", "17:00"},
			block: [2]string{"09:00", "12:00"},
			want:  [][2]string{{"12:00", "17:00"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := mustRange(t, tt.base[0], tt.base[1])
			block := mustRange(t, tt.block[0], tt.block[1])

			var want []TimeRange
			for _, w := range tt.want {
				want = append(want, mustRange(t, w[0], w[1]))
			}

			got := base.Subtract(block)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Subtract() = %v, want %v", got, want)
			}
		})
	}
}
