package review

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_StarCountMatchesRating(t *testing.T) {
	for rating := 0; rating <= MaxRating; rating++ {
		t.Run(fmt.Sprintf("rating_%d", rating), func(t *testing.T) {
			in := NewInput()
			in.PlaceName = "Cafe X"
			in.Rating = rating

			out := Generate(in)

			assert.Equal(t, rating, strings.Count(out.Short, StarGlyph), "short")
			assert.Equal(t, rating, strings.Count(out.Medium, StarGlyph), "medium")
			assert.Equal(t, rating, strings.Count(out.Cinematic, StarGlyph), "cinematic")
			assert.Contains(t, out.Short, fmt.Sprintf("%d/5", rating))
		})
	}
}

func TestGenerate_IsDeterministic(t *testing.T) {
	in := Input{PlaceName: "مطعم الرومانسية", ServiceType: ServiceRestaurant, Rating: 3, Pros: "الديكور", Cons: "الزحام"}

	first := Generate(in)
	second := Generate(in)

	assert.Equal(t, first, second)
}

func TestGenerate_CafeXScenario(t *testing.T) {
	in := Input{PlaceName: "Cafe X", ServiceType: ServiceCafe, Rating: 5, Pros: "great coffee"}

	out := Generate(in)

	assert.Contains(t, out.Short, "مميزة جداً")
	assert.Contains(t, out.Short, "5/5")
	assert.Equal(t, 5, strings.Count(out.Short, StarGlyph))
	assert.Contains(t, out.Short, "#Cafe_X")
	assert.Equal(t, "تجربتي في Cafe X كانت مميزة جداً. أعجبني: great coffee. التقييم: 5/5 ⭐⭐⭐⭐⭐ \n#Cafe_X #سامكو_ريفيو", out.Short)

	assert.Contains(t, out.Medium, "great coffee")
	assert.NotContains(t, out.Medium, "لكن هناك ملاحظة بسيطة")

	lines := strings.Split(out.Cinematic, "\n")
	var note string
	for _, line := range lines {
		if strings.HasPrefix(line, "⚠️ همسة محبة: ") {
			note = strings.TrimPrefix(line, "⚠️ همسة محبة: ")
		}
	}
	assert.Equal(t, DefaultGentleNote, note)
}

func TestGenerate_LowRatingUsesPlainSentiment(t *testing.T) {
	out := Generate(Input{PlaceName: "Hotel", ServiceType: ServiceHotel, Rating: 3})

	assert.Contains(t, out.Short, "كانت جيدة. . التقييم: 3/5")
	assert.Contains(t, out.Cinematic, "الراحة والهدوء")
	assert.NotContains(t, out.Cinematic, "الفخامة والاهتمام")
}

func TestGenerate_OptionalClauses(t *testing.T) {
	in := Input{PlaceName: "X", ServiceType: ServiceCafe, Rating: 4, Pros: "القهوة", Cons: "الأسعار"}

	out := Generate(in)

	assert.Contains(t, out.Medium, "أكثر ما لفت انتباهي هو القهوة.")
	assert.Contains(t, out.Medium, "لكن هناك ملاحظة بسيطة بخصوص الأسعار.")
	assert.Contains(t, out.Cinematic, "💎 نقاط الجمال: القهوة\n")
	assert.Contains(t, out.Cinematic, "⚠️ همسة محبة: الأسعار\n")

	in.Pros = ""
	out = Generate(in)
	assert.NotContains(t, out.Medium, "أكثر ما لفت انتباهي")
	assert.Contains(t, out.Cinematic, "💎 نقاط الجمال: "+DefaultBeautyPoints+"\n")
}

func TestGenerate_ZeroRatingIsPermitted(t *testing.T) {
	out := Generate(Input{PlaceName: "Y", ServiceType: ServiceGeneral})

	require.NotEmpty(t, out.Short)
	assert.Contains(t, out.Short, "0/5  \n")
	assert.Zero(t, strings.Count(out.Cinematic, StarGlyph))
}

func TestGenerate_NoHTMLEscaping(t *testing.T) {
	out := Generate(Input{PlaceName: "Tom & Jerry's <Diner>", ServiceType: ServiceRestaurant, Rating: 2})

	assert.Contains(t, out.Short, "Tom & Jerry's <Diner>")
}

func TestHashtag(t *testing.T) {
	cases := map[string]string{
		"Cafe X":          "Cafe_X",
		"a  b":            "a__b",
		"tab\there":       "tab_here",
		"ستاربكس":         "ستاربكس",
		"مطعم الرومانسية": "مطعم_الرومانسية",
		"a\ufeffb":        "a_b",
		"a\u0085b":        "a\u0085b",
		"a\u00a0b\u3000c": "a_b_c",
	}
	for in, want := range cases {
		assert.Equal(t, want, Hashtag(in), in)
	}
}

func TestInputSet(t *testing.T) {
	in := NewInput()
	assert.Equal(t, DefaultServiceType, in.ServiceType)

	assert.True(t, in.Set(FieldPlaceName, "Cafe"))
	assert.True(t, in.Set(FieldServiceType, "hotel"))
	assert.True(t, in.Set(FieldPros, "view"))
	assert.True(t, in.Set(FieldCons, "noise"))
	assert.False(t, in.Set(FieldServiceType, "spaceport"))
	assert.False(t, in.Set(Field("rating"), "5"))

	assert.Equal(t, Input{PlaceName: "Cafe", ServiceType: ServiceHotel, Pros: "view", Cons: "noise"}, in)
}

func TestGeneratedText(t *testing.T) {
	g := Generated{Short: "s", Medium: "m", Cinematic: "c"}
	assert.Equal(t, "s", g.Text(VariantShort))
	assert.Equal(t, "m", g.Text(VariantMedium))
	assert.Equal(t, "c", g.Text(VariantCinematic))
	assert.Empty(t, g.Text(Variant("long")))
	assert.True(t, Generated{}.IsEmpty())
	assert.False(t, g.IsEmpty())
}
