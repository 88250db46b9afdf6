// Package faker produces localized synthetic identities and free text
// (people, companies, addresses, phrases) from embedded reference data.
// Every value is drawn from the Random it was built with, so output is
// reproducible per seed.
package faker

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/willfong/fingen/internal/data"
	"github.com/willfong/fingen/internal/utils"
)

// Identity is the identity/text generator consumed by the table builders.
type Identity interface {
	FullName() string
	FirstName() string
	LastName() string
	Person() Person
	CompanyName() string
	StreetAddress() string
	City() string
	Email(firstName, lastName string) string
	CatchPhrase(maxLen int) string
	ShortSentence(words, maxLen int) string
}

// Person is a first/last name pair with consistent grammatical gender.
type Person struct {
	FirstName string
	LastName  string
	Male      bool
}

// Faker implements Identity for one locale.
type Faker struct {
	rng    *utils.Random
	locale string

	maleFirst   []string
	femaleFirst []string
	maleLast    []string
	femaleLast  []string
	addresses   data.LocaleAddresses
	companies   data.LocaleCompanies
	phrases     data.LocalePhrases
}

// New creates a Faker for the given locale. It fails if the locale has no
// reference data, since every builder depends on it.
func New(rng *utils.Random, refData *data.ReferenceData, locale string) (*Faker, error) {
	f := &Faker{
		rng:         rng,
		locale:      locale,
		maleFirst:   refData.GetFirstNames(locale, true),
		femaleFirst: refData.GetFirstNames(locale, false),
		maleLast:    refData.GetLastNames(locale, true),
		femaleLast:  refData.GetLastNames(locale, false),
	}

	var ok bool
	if f.addresses, ok = refData.GetAddresses(locale); !ok {
		return nil, fmt.Errorf("no address data for locale %s", locale)
	}
	if f.companies, ok = refData.GetCompanies(locale); !ok {
		return nil, fmt.Errorf("no company data for locale %s", locale)
	}
	if f.phrases, ok = refData.GetPhrases(locale); !ok {
		return nil, fmt.Errorf("no phrase data for locale %s", locale)
	}
	if len(f.maleFirst) == 0 || len(f.femaleFirst) == 0 || len(f.maleLast) == 0 {
		return nil, fmt.Errorf("no name data for locale %s", locale)
	}

	return f, nil
}

// Locale returns the locale this faker generates for
func (f *Faker) Locale() string {
	return f.locale
}

// Person returns a gender-consistent first and last name
func (f *Faker) Person() Person {
	male := f.rng.Bool()
	p := Person{Male: male}
	if male {
		p.FirstName = f.rng.PickString(f.maleFirst)
	} else {
		p.FirstName = f.rng.PickString(f.femaleFirst)
	}
	p.LastName = f.lastName(male)
	return p
}

// FullName returns "First Last"
func (f *Faker) FullName() string {
	p := f.Person()
	return p.FirstName + " " + p.LastName
}

// FirstName returns a first name of either gender
func (f *Faker) FirstName() string {
	if f.rng.Bool() {
		return f.rng.PickString(f.maleFirst)
	}
	return f.rng.PickString(f.femaleFirst)
}

// LastName returns a surname of either gender
func (f *Faker) LastName() string {
	return f.lastName(f.rng.Bool())
}

func (f *Faker) lastName(male bool) string {
	idx := f.rng.IntN(len(f.maleLast))
	if !male && idx < len(f.femaleLast) {
		return f.femaleLast[idx]
	}
	return f.maleLast[idx]
}

// CompanyName builds a company name such as "Dvořák a Král s.r.o."
func (f *Faker) CompanyName() string {
	format := f.rng.PickString(f.companies.Formats)
	if format == "" {
		format = "{last} {suffix}"
	}

	var b strings.Builder
	for {
		start := strings.IndexByte(format, '{')
		if start < 0 {
			b.WriteString(format)
			break
		}
		end := strings.IndexByte(format[start:], '}')
		if end < 0 {
			b.WriteString(format)
			break
		}
		b.WriteString(format[:start])

		switch format[start+1 : start+end] {
		case "last":
			b.WriteString(f.rng.PickString(f.maleLast))
		case "word":
			b.WriteString(f.rng.PickString(f.companies.Words))
		case "suffix":
			b.WriteString(f.rng.PickString(f.companies.Suffixes))
		}
		format = format[start+end+1:]
	}
	return b.String()
}

// StreetAddress returns "<street> <číslo popisné>[/<číslo orientační>]"
func (f *Faker) StreetAddress() string {
	street := f.rng.PickString(f.addresses.Streets)
	number := f.rng.IntRange(1, 2999)
	if f.rng.Probability(0.4) {
		return fmt.Sprintf("%s %d/%d", street, number, f.rng.IntRange(1, 99))
	}
	return fmt.Sprintf("%s %d", street, number)
}

// City returns a city name
func (f *Faker) City() string {
	return f.rng.PickString(f.addresses.Cities)
}

// Email builds an ASCII e-mail address from a person's name. Empty names
// are replaced by a random person.
func (f *Faker) Email(firstName, lastName string) string {
	if firstName == "" || lastName == "" {
		p := f.Person()
		firstName, lastName = p.FirstName, p.LastName
	}

	first := asciiFold(firstName)
	last := asciiFold(lastName)
	domain := f.rng.PickString(f.phrases.EmailDomains)

	switch f.rng.IntN(4) {
	case 0:
		return fmt.Sprintf("%s.%s@%s", first, last, domain)
	case 1:
		return fmt.Sprintf("%s%s@%s", first[:1], last, domain)
	case 2:
		return fmt.Sprintf("%s.%s%d@%s", first, last, f.rng.IntRange(1, 99), domain)
	default:
		return fmt.Sprintf("%s_%s@%s", last, first, domain)
	}
}

// CatchPhrase returns a short marketing phrase truncated to maxLen runes
func (f *Faker) CatchPhrase(maxLen int) string {
	cp := f.phrases.CatchPhrase
	phrase := f.rng.PickString(cp.Adjectives) + " " +
		f.rng.PickString(cp.Nouns) + " " +
		f.rng.PickString(cp.Attributes)
	return Truncate(phrase, maxLen)
}

// ShortSentence returns a capitalized sentence of the given number of
// words ending with a period, truncated to maxLen runes.
func (f *Faker) ShortSentence(words, maxLen int) string {
	if words <= 0 {
		return ""
	}
	parts := make([]string, words)
	for i := range parts {
		parts[i] = f.rng.PickString(f.phrases.Words)
	}

	r := []rune(parts[0])
	if len(r) > 0 {
		r[0] = unicode.ToUpper(r[0])
		parts[0] = string(r)
	}
	return Truncate(strings.Join(parts, " ")+".", maxLen)
}

// Truncate cuts s to at most maxLen runes. maxLen <= 0 means no limit.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen])
}

// asciiFold lowercases s and strips diacritics and anything that is not
// a letter or digit, e.g. "Kateřina Šťastná" -> "katerinastastna".
func asciiFold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "x"
	}
	return b.String()
}
