package model

import "testing"

func TestParseFilter(t *testing.T) {
	cases := []struct {
		in      string
		want    Filter
		wantErr bool
	}{
		{"all", FilterAll, false},
		{"active", FilterActive, false},
		{"completed", FilterCompleted, false},
		{"", "", true},
		{"done", "", true},
		{"Active", "", true},
	}

	for _, c := range cases {
		got, err := ParseFilter(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseFilter(%q): expected error, got %q", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFilter(%q): unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseFilter(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFilterMatches(t *testing.T) {
	active := Task{ID: "a", Text: "Buy milk"}
	done := Task{ID: "b", Text: "Pay bills", Completed: true}

	cases := []struct {
		filter Filter
		task   Task
		want   bool
	}{
		{FilterAll, active, true},
		{FilterAll, done, true},
		{FilterActive, active, true},
		{FilterActive, done, false},
		{FilterCompleted, active, false},
		{FilterCompleted, done, true},
	}

	for _, c := range cases {
		if got := c.filter.Matches(c.task); got != c.want {
			t.Errorf("%s.Matches(%s) = %v, want %v", c.filter, c.task.Text, got, c.want)
		}
	}
}

func TestFilterValid(t *testing.T) {
	for _, f := range Filters() {
		if !f.Valid() {
			t.Errorf("%q should be valid", f)
		}
	}
	if Filter("later").Valid() {
		t.Error("unknown filter reported as valid")
	}
}
