package offer

import (
	"testing"
	"tonoffer/internal/models"

	"github.com/stretchr/testify/require"
)

func TestParse_DeepLink(t *testing.T) {
	listing := Parse("startapp=item%3Dvip_074__price%3D15")
	require.Equal(t, "vip_074", listing.Name)
	require.Equal(t, 15.0, listing.Price)
	require.Equal(t, models.KindUsername, listing.Kind())
}

func TestParse_WebAppKey(t *testing.T) {
	listing := Parse("tgWebAppStartParam=item%3Dcool__price%3D250.5")
	require.Equal(t, "cool", listing.Name)
	require.Equal(t, 250.5, listing.Price)
}

func TestParse_DateField(t *testing.T) {
	listing := Parse("startapp=item%3Dcool__price%3D10__date%3D1700000000")
	require.Equal(t, int64(1700000000), listing.Date)
}

func TestParse_FallsBackToDefault(t *testing.T) {
	cases := map[string]string{
		"empty query":        "",
		"no recognized key":  "foo=bar",
		"empty param":        "startapp=",
		"no price":           "startapp=item%3Dcool",
		"no item":            "startapp=price%3D15",
		"price not a number": "startapp=item%3Dcool__price%3Dabc",
		"price negative":     "startapp=item%3Dcool__price%3D-3",
		"price zero":         "startapp=item%3Dcool__price%3D0",
		"broken encoding":    "startapp=item%3Dcool__price%3D15;%zz",
		"garbage":            "startapp=____",
	}

	for name, query := range cases {
		t.Run(name, func(t *testing.T) {
			listing := Parse(query)
			require.Equal(t, DefaultListing(), listing)
			require.Equal(t, "main", listing.Name)
			require.Equal(t, 1000.0, listing.Price)
		})
	}
}

func TestParseParam_NameAlias(t *testing.T) {
	listing := ParseParam("name=cool__price=42")
	require.Equal(t, "cool", listing.Name)
	require.Equal(t, 42.0, listing.Price)
}

func TestOfferListing_Kind(t *testing.T) {
	cases := []struct {
		name string
		want models.CollectibleKind
	}{
		{"vip_074", models.KindUsername},
		{"main", models.KindUsername},
		{"+888123456", models.KindAnonymousNumber},
		{"888123456", models.KindAnonymousNumber},
	}

	for _, c := range cases {
		listing := models.OfferListing{Name: c.name, Price: 1}
		require.Equal(t, c.want, listing.Kind(), c.name)
	}
}

func TestOfferListing_MatchesSearch(t *testing.T) {
	listing := models.OfferListing{Name: "main", Price: 1000}
	require.True(t, listing.MatchesSearch(""))
	require.True(t, listing.MatchesSearch("MAI"))
	require.True(t, listing.MatchesSearch("domain")) // query contains the name
	require.False(t, listing.MatchesSearch("other"))
}
