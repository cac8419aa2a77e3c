// Zaparoo Fuzzymonth
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo Fuzzymonth.
//
// Zaparoo Fuzzymonth is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo Fuzzymonth is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo Fuzzymonth.  If not, see <http://www.gnu.org/licenses/>.

package months

// canonicalNames is the fuzzy matching corpus, in calendar order. The order
// decides ties: the earliest month with the top score wins.
var canonicalNames = []string{
	"january",
	"february",
	"march",
	"april",
	"may",
	"june",
	"july",
	"august",
	"september",
	"october",
	"november",
	"december",
}

// exactTokens maps full names, abbreviations and numeric forms to months.
var exactTokens = map[string]Month{
	"january": January, "jan": January, "ja": January, "1": January, "01": January,
	"february": February, "feb": February, "2": February, "02": February,
	"march": March, "mar": March, "3": March, "03": March,
	"april": April, "apr": April, "4": April, "04": April,
	"may": May, "5": May, "05": May,
	"june": June, "jun": June, "6": June, "06": June,
	"july": July, "jul": July, "7": July, "07": July,
	"august": August, "aug": August, "8": August, "08": August,
	"september": September, "sep": September, "sept": September, "9": September, "09": September,
	"october": October, "oct": October, "10": October,
	"november": November, "nov": November, "11": November,
	"december": December, "dec": December, "12": December,
}

// Variant is a month spelling in a language other than English.
type Variant struct {
	Spelling string
	Language string
	Month    Month
}

// internationalVariants lists Spanish, French, German, Italian, Polish,
// Russian, Arabic and Chinese month names. Spellings shared by two
// languages appear once per language.
var internationalVariants = []Variant{
	{"enero", "es", January},
	{"janvier", "fr", January},
	{"januar", "de", January},
	{"gennaio", "it", January},
	{"styczeń", "pl", January},
	{"январь", "ru", January},
	{"يناير", "ar", January},
	{"一月", "zh", January},

	{"febrero", "es", February},
	{"février", "fr", February},
	{"februar", "de", February},
	{"febbraio", "it", February},
	{"luty", "pl", February},
	{"февраль", "ru", February},
	{"فبراير", "ar", February},
	{"二月", "zh", February},

	{"marzo", "es", March},
	{"mars", "fr", March},
	{"märz", "de", March},
	{"marzo", "it", March},
	{"marzec", "pl", March},
	{"март", "ru", March},
	{"مارس", "ar", March},
	{"三月", "zh", March},

	{"abril", "es", April},
	{"avril", "fr", April},
	{"april", "de", April},
	{"aprile", "it", April},
	{"kwiecień", "pl", April},
	{"апрель", "ru", April},
	{"أبريل", "ar", April},
	{"四月", "zh", April},

	{"mayo", "es", May},
	{"mai", "fr", May},
	{"mai", "de", May},
	{"maggio", "it", May},
	{"maj", "pl", May},
	{"май", "ru", May},
	{"مايو", "ar", May},
	{"五月", "zh", May},

	{"junio", "es", June},
	{"juin", "fr", June},
	{"juni", "de", June},
	{"giugno", "it", June},
	{"czerwiec", "pl", June},
	{"июнь", "ru", June},
	{"يونيو", "ar", June},
	{"六月", "zh", June},

	{"julio", "es", July},
	{"juillet", "fr", July},
	{"juli", "de", July},
	{"luglio", "it", July},
	{"lipiec", "pl", July},
	{"июль", "ru", July},
	{"يوليو", "ar", July},
	{"七月", "zh", July},

	{"agosto", "es", August},
	{"août", "fr", August},
	{"august", "de", August},
	{"agosto", "it", August},
	{"sierpień", "pl", August},
	{"август", "ru", August},
	{"أغسطس", "ar", August},
	{"八月", "zh", August},

	{"septiembre", "es", September},
	{"septembre", "fr", September},
	{"september", "de", September},
	{"settembre", "it", September},
	{"wrzesień", "pl", September},
	{"сентябрь", "ru", September},
	{"سبتمبر", "ar", September},
	{"九月", "zh", September},

	{"octubre", "es", October},
	{"octobre", "fr", October},
	{"oktober", "de", October},
	{"ottobre", "it", October},
	{"październik", "pl", October},
	{"октябрь", "ru", October},
	{"أكتوبر", "ar", October},
	{"十月", "zh", October},

	{"noviembre", "es", November},
	{"novembre", "fr", November},
	{"november", "de", November},
	{"novembre", "it", November},
	{"listopad", "pl", November},
	{"ноябрь", "ru", November},
	{"نوفمبر", "ar", November},
	{"十一月", "zh", November},

	{"diciembre", "es", December},
	{"décembre", "fr", December},
	{"dezember", "de", December},
	{"dicembre", "it", December},
	{"grudzień", "pl", December},
	{"декабрь", "ru", December},
	{"ديسمبر", "ar", December},
	{"十二月", "zh", December},
}

// variantTokens indexes internationalVariants by spelling. Duplicate
// spellings always agree on the month, so the last write is harmless.
var variantTokens = func() map[string]Month {
	m := make(map[string]Month, len(internationalVariants))
	for _, v := range internationalVariants {
		m[v.Spelling] = v.Month
	}
	return m
}()

// denylist holds month-like words that fuzzy matching would otherwise accept
// or that are too far from any month to be trusted.
var denylist = map[string]struct{}{
	"marsh":   {},
	"julie":   {},
	"januori": {},
}

// Variants returns a copy of the international spelling table.
func Variants() []Variant {
	out := make([]Variant, len(internationalVariants))
	copy(out, internationalVariants)
	return out
}
