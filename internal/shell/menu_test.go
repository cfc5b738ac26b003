package shell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func itemIDs(items []MenuItem) []ItemID {
	out := make([]ItemID, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestMenuItemsByRole(t *testing.T) {
	tests := []struct {
		name string
		role Role
		want []string
	}{
		{name: "admin", role: ParseRole("admin"), want: []string{"Add Product", "Logout"}},
		{name: "user", role: ParseRole("user"), want: []string{"Add Address", "Logout"}},
		{name: "guest", role: ParseRole("guest"), want: []string{"Logout"}},
		{name: "empty", role: ParseRole(""), want: []string{"Logout"}},
		{name: "case differs", role: ParseRole("Admin"), want: []string{"Logout"}},
		{name: "nil", role: nil, want: []string{"Logout"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var labels []string
			for _, it := range MenuItems(tt.role) {
				labels = append(labels, it.Label)
			}
			require.Equal(t, tt.want, labels)
		})
	}
}

func TestParseRoleKeepsRawName(t *testing.T) {
	r := ParseRole("guest")
	other, ok := r.(Other)
	require.True(t, ok)
	require.Equal(t, "guest", other.Name)
	require.Equal(t, "guest", r.String())
	require.Equal(t, "admin", ParseRole("admin").String())
}

func TestParseFilter(t *testing.T) {
	for _, f := range Filters() {
		got, err := ParseFilter(f.String())
		require.NoError(t, err)
		require.Equal(t, f, got)
	}

	got, err := ParseFilter("lowest")
	require.ErrorIs(t, err, ErrUnknownFilter)
	require.Equal(t, FilterDefault, got)
}

func TestSuggestFilter(t *testing.T) {
	cases := []struct {
		raw  string
		want Filter
		ok   bool
	}{
		{raw: "newst", want: FilterNewest, ok: true},
		{raw: "low-to-hihg", want: FilterLowToHigh, ok: true},
		{raw: "HIGH-TO-LOW", want: FilterHighToLow, ok: true},
		{raw: "defualt", want: FilterDefault, ok: true},
		{raw: "cheapest", ok: false},
		{raw: "  ", ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, ok := SuggestFilter(tc.raw)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				require.Equal(t, tc.want, got)
			}
		})
	}

	_, err := ParseFilter("newst")
	require.ErrorIs(t, err, ErrUnknownFilter)
	require.ErrorContains(t, err, `did you mean "newest"?`)
}

func TestFilterLabels(t *testing.T) {
	require.Equal(t, "Low to High", FilterLowToHigh.Label())
	require.Equal(t, "Newest", FilterNewest.Label())
	require.Equal(t, "bogus", Filter("bogus").Label())
}

func TestNavVisible(t *testing.T) {
	require.True(t, NavVisible(120, 80, false), "wide viewport always shows navigation")
	require.True(t, NavVisible(80, 80, false))
	require.False(t, NavVisible(79, 80, false))
	require.True(t, NavVisible(40, 80, true))
}
