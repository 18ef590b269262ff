package datemath_test

import (
	"errors"
	"testing"
	"time"

	"task-chat-agent/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Europe/Berlin")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{name: "ISO date", value: "2024-06-30", want: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)},
		{name: "ISO datetime", value: "2024-06-30T09:15:00", want: time.Date(2024, 6, 30, 9, 15, 0, 0, time.UTC)},
		{name: "RFC3339 with offset", value: "2024-06-30T09:15:00+02:00", want: time.Date(2024, 6, 30, 7, 15, 0, 0, time.UTC)},
		{name: "Today", value: "today", want: startOfBase},
		{name: "Tomorrow mixed case", value: " Tomorrow ", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Yesterday", value: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "In 3 days", value: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "In 2 weeks", value: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", value: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "Invalid duration pattern", value: "in a few days", wantErr: true},
		// Wed(3) to Mon(1) is +5 days
		{name: "Next Monday (from Wed)", value: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", value: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Unknown phrase", value: "some random day", wantErr: true},
		{name: "Invalid Next Weekday", value: "next funday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.value, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, datemath.ErrUnrecognized) {
					t.Errorf("Parse() error = %v, want ErrUnrecognized", err)
				}
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}
