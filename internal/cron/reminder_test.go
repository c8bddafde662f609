package cron

import "testing"

func TestParseClock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    ClockTime
		wantErr bool
	}{
		{name: "plain", input: "05:12", want: ClockTime{Hour: 5, Minute: 12}},
		{name: "late evening", input: "19:47", want: ClockTime{Hour: 19, Minute: 47}},
		{name: "whitespace", input: " 12:33 ", want: ClockTime{Hour: 12, Minute: 33}},
		{name: "missing colon", input: "1230", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "05:61", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q) error=%v, wantErr=%v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Fatalf("ParseClock(%q)=%v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestReminderTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		at     ClockTime
		lead   int
		want   ClockTime
		wantOK bool
	}{
		{
			name: "no underflow",
			at:   ClockTime{Hour: 12, Minute: 33}, lead: 15,
			want: ClockTime{Hour: 12, Minute: 18}, wantOK: true,
		},
		{
			name: "borrows an hour",
			at:   ClockTime{Hour: 5, Minute: 10}, lead: 15,
			want: ClockTime{Hour: 4, Minute: 55}, wantOK: true,
		},
		{
			name: "exact boundary",
			at:   ClockTime{Hour: 5, Minute: 15}, lead: 15,
			want: ClockTime{Hour: 5, Minute: 0}, wantOK: true,
		},
		{
			name: "rolls past midnight",
			at:   ClockTime{Hour: 0, Minute: 10}, lead: 15,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ReminderTime(tt.at, tt.lead)
			if ok != tt.wantOK {
				t.Fatalf("ReminderTime(%v, %d) ok=%v, want %v", tt.at, tt.lead, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Fatalf("ReminderTime(%v, %d)=%v, want %v", tt.at, tt.lead, got, tt.want)
			}
			if ok && (got.Minute < 0 || got.Minute > 59) {
				t.Fatalf("ReminderTime produced invalid minute: %v", got)
			}
		})
	}
}
