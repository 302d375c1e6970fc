package entity

import "testing"

func TestStatusForTotal(t *testing.T) {
	tests := []struct {
		name  string
		total int
		want  WeekStatus
	}{
		{name: "zero hours is missing", total: 0, want: WeekStatusMissing},
		{name: "one hour is incomplete", total: 1, want: WeekStatusIncomplete},
		{name: "thirty nine hours is incomplete", total: 39, want: WeekStatusIncomplete},
		{name: "exactly the cap is completed", total: 40, want: WeekStatusCompleted},
		{name: "above the cap degrades to incomplete", total: 41, want: WeekStatusIncomplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusForTotal(tt.total); got != tt.want {
				t.Errorf("StatusForTotal(%d) = %q, want %q", tt.total, got, tt.want)
			}
		})
	}
}

func TestIsValidWeekStatus(t *testing.T) {
	for _, status := range []WeekStatus{WeekStatusMissing, WeekStatusIncomplete, WeekStatusCompleted} {
		if !IsValidWeekStatus(status) {
			t.Errorf("IsValidWeekStatus(%q) = false, want true", status)
		}
	}

	if IsValidWeekStatus("Done") {
		t.Error(`IsValidWeekStatus("Done") = true, want false`)
	}
}

func TestIsValidProject(t *testing.T) {
	for _, p := range Projects {
		if !IsValidProject(p) {
			t.Errorf("IsValidProject(%q) = false, want true", p)
		}
	}

	if IsValidProject("Project D") {
		t.Error(`IsValidProject("Project D") = true, want false`)
	}
}

func TestIsValidWorkType(t *testing.T) {
	for _, w := range WorkTypes {
		if !IsValidWorkType(w) {
			t.Errorf("IsValidWorkType(%q) = false, want true", w)
		}
	}

	if IsValidWorkType("Vacation") {
		t.Error(`IsValidWorkType("Vacation") = true, want false`)
	}
}
