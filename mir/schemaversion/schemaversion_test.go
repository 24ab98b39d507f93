package schemaversion

import "testing"

func TestCheck(t *testing.T) {
	cases := []struct {
		requested string
		wantErr   bool
	}{
		{"", false},
		{Current, false},
		{"v1.5.2", false},
		{"not-a-version", true},
		{"v2.0.0", true},
	}
	for _, c := range cases {
		err := Check(c.requested)
		if (err != nil) != c.wantErr {
			t.Errorf("Check(%q) error = %v, wantErr %v", c.requested, err, c.wantErr)
		}
	}
}
