package language

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language is one entry of the supported set.
type Language struct {
	Code string // canonical tag, e.g. "es" or "zh-CN"
	Name string // English display name, e.g. "Spanish"

	tag language.Tag
}

// Tag returns the underlying BCP 47 tag.
func (l Language) Tag() language.Tag {
	return l.tag
}

var supportedCodes = []string{
	"en", "es", "fr", "de", "it", "pt", "ja", "ko",
	"zh-CN", "zh-TW", "ru", "ar", "hi", "nl", "pl",
	"sv", "da", "no", "fi", "tr", "vi", "th", "id",
}

// CLDR renders regional Chinese tags as "Chinese (China)"; the translation
// prompt reads better with the conventional script names.
var nameOverrides = map[string]string{
	"zh-CN": "Simplified Chinese",
	"zh-TW": "Traditional Chinese",
}

var byCode map[string]Language

func init() {
	namer := display.English.Tags()
	byCode = make(map[string]Language, len(supportedCodes))
	for _, code := range supportedCodes {
		tag := language.MustParse(code)
		name := nameOverrides[code]
		if name == "" {
			name = namer.Name(tag)
		}
		byCode[strings.ToLower(code)] = Language{
			Code: code,
			Name: name,
			tag:  tag,
		}
	}
}

// Resolve looks up a requested language tag against the supported set.
// Matching is case-insensitive and tolerates underscore separators
// (e.g. "zh_cn"). The second return is false for anything outside the set.
func Resolve(code string) (Language, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Language{}, false
	}
	code = strings.ReplaceAll(code, "_", "-")
	if lang, ok := byCode[strings.ToLower(code)]; ok {
		return lang, true
	}
	tag, err := language.Parse(code)
	if err != nil {
		return Language{}, false
	}
	if lang, ok := byCode[strings.ToLower(tag.String())]; ok {
		return lang, true
	}
	// A regional variant of a supported base language ("pt-BR") falls back
	// to the base entry rather than being rejected.
	base, conf := tag.Base()
	if conf < language.High {
		return Language{}, false
	}
	lang, ok := byCode[strings.ToLower(base.String())]
	return lang, ok
}

// Supported returns the supported set sorted by code, for error messages and
// the CLI.
func Supported() []Language {
	out := make([]Language, 0, len(byCode))
	for _, lang := range byCode {
		out = append(out, lang)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// SupportedCodes returns just the canonical codes, sorted.
func SupportedCodes() []string {
	langs := Supported()
	codes := make([]string, len(langs))
	for i, lang := range langs {
		codes[i] = lang.Code
	}
	return codes
}
