package domain

import "testing"

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"+7 (915) 123-45-67", "79151234567"},
		{"79151234567", "79151234567"},
		{"8-800-555-35-35", "88005553535"},
		{"", ""},
		{"abc", ""},
	}
	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRosterCourier_MatchesPhone(t *testing.T) {
	t.Parallel()

	c := RosterCourier{Phones: "79151234567,79150000000"}

	if !c.MatchesPhone("+7 915 123-45-67") {
		t.Fatal("expected formatted number to match the first entry")
	}
	if !c.MatchesPhone("79150000000") {
		t.Fatal("expected second entry to match")
	}
	if c.MatchesPhone("79159999999") {
		t.Fatal("unexpected match for unknown number")
	}
	if c.MatchesPhone("") {
		t.Fatal("empty number must not match")
	}
}

func TestRosterCourier_FullName(t *testing.T) {
	t.Parallel()

	c := RosterCourier{LastName: "Иванов", FirstName: "Иван", Patronymic: "Иванович"}
	if got := c.FullName(); got != "Иванов Иван Иванович" {
		t.Fatalf("unexpected full name %q", got)
	}

	c = RosterCourier{FirstName: "Иван"}
	if got := c.FullName(); got != "Иван" {
		t.Fatalf("expected empty parts skipped, got %q", got)
	}
}
