package faker

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willfong/fingen/internal/data"
	"github.com/willfong/fingen/internal/utils"
)

func newTestFaker(t *testing.T, seed int64) *Faker {
	t.Helper()
	refData, err := data.Load()
	require.NoError(t, err)
	f, err := New(utils.NewRandom(seed), refData, data.DefaultLocale)
	require.NoError(t, err)
	return f
}

func TestNewUnknownLocale(t *testing.T) {
	refData, err := data.Load()
	require.NoError(t, err)

	_, err = New(utils.NewRandom(1), refData, "xx_XX")
	assert.Error(t, err)
}

func TestFakerDeterministic(t *testing.T) {
	a := newTestFaker(t, 42)
	b := newTestFaker(t, 42)

	for i := 0; i < 50; i++ {
		require.Equal(t, a.FullName(), b.FullName())
		require.Equal(t, a.CompanyName(), b.CompanyName())
		require.Equal(t, a.StreetAddress(), b.StreetAddress())
		require.Equal(t, a.CatchPhrase(50), b.CatchPhrase(50))
	}
}

func TestPersonGenderConsistent(t *testing.T) {
	f := newTestFaker(t, 7)
	refData, _ := data.Load()
	female := refData.GetLastNames(data.DefaultLocale, false)
	femaleSet := make(map[string]bool, len(female))
	for _, n := range female {
		femaleSet[n] = true
	}

	for i := 0; i < 200; i++ {
		p := f.Person()
		assert.NotEmpty(t, p.FirstName)
		assert.NotEmpty(t, p.LastName)
		if p.Male {
			assert.False(t, femaleSet[p.LastName], "male person got female surname %s", p.LastName)
		} else {
			assert.True(t, femaleSet[p.LastName], "female person got surname %s", p.LastName)
		}
	}
}

func TestCompanyName(t *testing.T) {
	f := newTestFaker(t, 3)
	for i := 0; i < 100; i++ {
		name := f.CompanyName()
		assert.NotContains(t, name, "{")
		assert.NotContains(t, name, "}")
		assert.NotEmpty(t, strings.TrimSpace(name))
	}
}

func TestStreetAddress(t *testing.T) {
	f := newTestFaker(t, 5)
	re := regexp.MustCompile(`^.+ \d+(/\d+)?$`)
	for i := 0; i < 100; i++ {
		addr := f.StreetAddress()
		assert.Regexp(t, re, addr)
	}
}

func TestEmail(t *testing.T) {
	f := newTestFaker(t, 11)
	re := regexp.MustCompile(`^[a-z0-9._]+@[a-z0-9.]+$`)

	t.Run("folds diacritics", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			email := f.Email("Kateřina", "Šťastná")
			assert.Regexp(t, re, email)
			assert.True(t, strings.Contains(email, "stastna"), email)
		}
	})

	t.Run("random person when names are empty", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			assert.Regexp(t, re, f.Email("", ""))
		}
	})
}

func TestCatchPhraseAndSentence(t *testing.T) {
	f := newTestFaker(t, 13)

	for i := 0; i < 200; i++ {
		assert.LessOrEqual(t, utf8.RuneCountInString(f.CatchPhrase(40)), 40)
		assert.LessOrEqual(t, utf8.RuneCountInString(f.CatchPhrase(50)), 50)

		s := f.ShortSentence(4, 60)
		assert.LessOrEqual(t, utf8.RuneCountInString(s), 60)
		assert.NotEmpty(t, s)
	}

	assert.Equal(t, "", f.ShortSentence(0, 60))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Příj", Truncate("Příjem", 4))
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "abc", Truncate("abc", 0))
}

func TestASCIIFold(t *testing.T) {
	tests := map[string]string{
		"Kateřina":  "katerina",
		"Šťastná":   "stastna",
		"Růžička":   "ruzicka",
		"Jan Novák": "jannovak",
		"Ďáblík":    "dablik",
		"€€€":       "x",
	}
	for in, want := range tests {
		assert.Equal(t, want, asciiFold(in), "asciiFold(%q)", in)
	}
}
