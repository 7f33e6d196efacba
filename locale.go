package opengraph

import (
	"strings"

	"golang.org/x/text/language"
)

// facebookLocales is the default set of locales accepted for og:locale.
var facebookLocales = []string{
	"af_ZA", "ar_AR", "az_AZ", "be_BY", "bg_BG", "bn_IN", "bs_BA", "ca_ES",
	"cs_CZ", "cy_GB", "da_DK", "de_DE", "el_GR", "en_GB", "en_PI", "en_UD",
	"en_US", "eo_EO", "es_ES", "es_LA", "et_EE", "eu_ES", "fa_IR", "fb_LT",
	"fi_FI", "fo_FO", "fr_CA", "fr_FR", "fy_NL", "ga_IE", "gl_ES", "he_IL",
	"hi_IN", "hr_HR", "hu_HU", "hy_AM", "id_ID", "is_IS", "it_IT", "ja_JP",
	"ka_GE", "km_KH", "ko_KR", "ku_TR", "la_VA", "lt_LT", "lv_LV", "mk_MK",
	"ml_IN", "ms_MY", "nb_NO", "ne_NP", "nl_NL", "nn_NO", "pa_IN", "pl_PL",
	"ps_AF", "pt_BR", "pt_PT", "ro_RO", "ru_RU", "sk_SK", "sl_SI", "sq_AL",
	"sr_RS", "sv_SE", "sw_KE", "ta_IN", "te_IN", "th_TH", "tl_PH", "tr_TR",
	"uk_UA", "vi_VN", "zh_CN", "zh_HK", "zh_TW",
}

// FacebookLocales returns a copy of the built-in supported locale list.
func FacebookLocales() []string {
	return append([]string(nil), facebookLocales...)
}

// NormalizeLocale converts a BCP 47 or POSIX style locale ("en-us",
// "en_US.UTF-8") to the language_TERRITORY form Open Graph uses. Values
// that are not well-formed tags are returned with only separators fixed.
func NormalizeLocale(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return ""
	}
	// Raw keeps legacy codes such as tl and nb as written.
	tag, err := language.Raw.Parse(s)
	if err == nil {
		base, _ := tag.Base()
		region, conf := tag.Region()
		if conf == language.Exact {
			return base.String() + "_" + region.String()
		}
		return base.String()
	}
	parts := strings.SplitN(strings.ReplaceAll(s, "-", "_"), "_", 2)
	if len(parts) == 1 {
		return strings.ToLower(parts[0])
	}
	return strings.ToLower(parts[0]) + "_" + strings.ToUpper(parts[1])
}

// IsLocaleValid reports whether locale is one of the configured locales.
func (c Config) IsLocaleValid(locale string) bool {
	locale = NormalizeLocale(locale)
	if locale == "" {
		return false
	}
	for _, l := range c.Locales {
		if NormalizeLocale(l) == locale {
			return true
		}
	}
	return false
}

// ResolveLocale returns locale when it is supported and the configured
// default otherwise.
func (c Config) ResolveLocale(locale string) string {
	if c.IsLocaleValid(locale) {
		return NormalizeLocale(locale)
	}
	return c.DefaultLocale
}

// LocaleMatcher builds a matcher over the configured locales for
// negotiating against an Accept-Language header.
func (c Config) LocaleMatcher() (language.Matcher, []string) {
	tags := make([]language.Tag, 0, len(c.Locales)+1)
	names := make([]string, 0, len(c.Locales)+1)
	add := func(l string) {
		t, err := language.Parse(strings.ReplaceAll(l, "_", "-"))
		if err != nil {
			return
		}
		tags = append(tags, t)
		names = append(names, NormalizeLocale(l))
	}
	// The default goes first so that it wins when nothing matches.
	add(c.DefaultLocale)
	for _, l := range c.Locales {
		add(l)
	}
	return language.NewMatcher(tags), names
}

// MatchAcceptLanguage picks the best supported locale for an
// Accept-Language header, falling back to the default locale.
func (c Config) MatchAcceptLanguage(header string) string {
	prefs, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(prefs) == 0 {
		return c.DefaultLocale
	}
	m, names := c.LocaleMatcher()
	_, idx, conf := m.Match(prefs...)
	if conf == language.No || idx < 0 || idx >= len(names) {
		return c.DefaultLocale
	}
	return names[idx]
}
