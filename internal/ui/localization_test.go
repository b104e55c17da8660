package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()
	assert.Equal(t, "en", l.GetCurrentLanguage())
	assert.Equal(t, IconStart+" Start Download", l.GetText(KeyStartDownload))

	l.SetLanguage("ru")
	assert.Equal(t, "ru", l.GetCurrentLanguage())
	assert.Equal(t, IconStart+" Начать загрузку", l.GetText(KeyStartDownload))

	// unknown language keeps the current one
	l.SetLanguage("xx")
	assert.Equal(t, "ru", l.GetCurrentLanguage())

	// system maps to English
	l.SetLanguage("system")
	assert.Equal(t, "en", l.GetCurrentLanguage())

	assert.Equal(t, "no_such_key", l.GetText("no_such_key"))
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !assert.True(t, ok, "missing texts for %s", code) {
			continue
		}
		for key := range english {
			assert.Contains(t, texts, key, "language %s lacks %s", code, key)
		}
	}
}
