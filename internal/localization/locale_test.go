package localization

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCoercesUnknownToEnglish(t *testing.T) {
	assert.Equal(t, English, Parse("fr"))
	assert.Equal(t, English, Parse(""))
	assert.Equal(t, English, Parse("EN"))
	assert.Equal(t, Italian, Parse("it"))
	assert.Equal(t, English, Parse("en"))
}

// Every locale must populate every string; an empty field would leak a
// blank placeholder into a prompt or response.
func TestLocalesAreComplete(t *testing.T) {
	for lang, loc := range locales {
		v := reflect.ValueOf(loc)
		for i := 0; i < v.NumField(); i++ {
			name := v.Type().Field(i).Name
			assert.NotEmpty(t, v.Field(i).String(), "%s.%s", lang, name)
		}
	}
}

func TestSystemTemplateEmbedsContext(t *testing.T) {
	for lang, loc := range locales {
		assert.Equal(t, 1, strings.Count(loc.SystemTemplate, "%s"), "%s system template", lang)
	}
}

func TestForUnknownLanguageFallsBack(t *testing.T) {
	assert.Equal(t, locales[English], For(Language("de")))
}
