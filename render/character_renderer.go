// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"strings"

	"github.com/saferwall/bytelayout/scalar"
)

// ReplacementPolicy decides which characters get the Unprintable
// treatment.
type ReplacementPolicy int

// Replacement policies, per spec.md §4.3.
const (
	// ReplaceNone never substitutes; every character renders literally.
	ReplaceNone ReplacementPolicy = iota

	// ReplaceNonPrintable substitutes only control/non-printable code
	// points.
	ReplaceNonPrintable

	// ReplaceEverything substitutes every code point outside the
	// printable ASCII range, including ones that would otherwise print
	// fine, useful for forcing a purely-ASCII display.
	ReplaceEverything
)

// UnprintablePolicy decides how a substituted character is rendered.
type UnprintablePolicy int

// Unprintable rendering policies.
const (
	// HexEscape renders as \xNN (or a canonical escape like \n).
	HexEscape UnprintablePolicy = iota

	// URLEncode renders as %NN (or a canonical escape like \n -- the
	// canonical control escapes are never percent-encoded, only the
	// generic \xNN case becomes %NN under this policy).
	URLEncode

	// Strip omits the character entirely, except for the canonical
	// control escapes (like \n), which are still emitted.
	Strip
)

// CharacterRenderer configures how a single scalar.Character renders:
// whether to wrap it in single quotes, which characters get replaced,
// and how a replaced character is spelled out.
type CharacterRenderer struct {
	ShowSingleQuotes bool
	Replacement      ReplacementPolicy
	Unprintable      UnprintablePolicy
}

// canonicalEscapes are the named escapes spec.md §4.3 calls out
// explicitly, used regardless of Unprintable policy.
var canonicalEscapes = map[rune]string{
	0x00: `\0`,
	0x07: `\a`,
	0x08: `\b`,
	0x09: `\t`,
	0x0A: `\n`,
	0x0B: `\v`,
	0x0C: `\f`,
	0x0D: `\r`,
}

func isControlOrDEL(r rune) bool {
	return (r >= 0x00 && r <= 0x1F) || r == 0x7F
}

// needsReplacement reports whether r should go through the
// Unprintable path under policy.
func needsReplacement(r rune, policy ReplacementPolicy) bool {
	switch policy {
	case ReplaceNone:
		return false
	case ReplaceNonPrintable:
		return isControlOrDEL(r)
	case ReplaceEverything:
		return isControlOrDEL(r) || r > 0x7E || r < 0x20
	default:
		return false
	}
}

// renderRune renders one code point body (without surrounding quotes)
// per the renderer's policy.
func (cr CharacterRenderer) renderRune(r rune) string {
	if !needsReplacement(r, cr.Replacement) {
		return string(r)
	}

	if esc, ok := canonicalEscapes[r]; ok {
		return esc
	}

	switch cr.Unprintable {
	case HexEscape:
		return fmt.Sprintf(`\x%02X`, r)
	case URLEncode:
		return fmt.Sprintf(`%%%02X`, r)
	case Strip:
		return ""
	default:
		return fmt.Sprintf(`\x%02X`, r)
	}
}

// RenderCharacter renders v according to the configured policy.
func (cr CharacterRenderer) RenderCharacter(v scalar.Character) (string, error) {
	body := cr.renderRune(v.Value)
	if !cr.ShowSingleQuotes {
		return body, nil
	}
	var b strings.Builder
	b.WriteByte('\'')
	b.WriteString(body)
	b.WriteByte('\'')
	return b.String(), nil
}

// RenderString renders a sequence of characters as a double-quoted
// string body, the form composite string types (Fixed/NT/LP) use for
// their own to_display, per spec.md §8 scenario S4
// ("\"AB❄☢𝄞😈÷\"").
func (cr CharacterRenderer) RenderString(chars []scalar.Character) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, c := range chars {
		b.WriteString(cr.renderRune(c.Value))
	}
	b.WriteByte('"')
	return b.String()
}

// DefaultCharacterConfig is the "literal character" default: no
// escaping, quoted in single quotes, matching DefaultFormatter's
// render_character in the original source (plain `{}` display).
func DefaultCharacterConfig() CharacterRenderer {
	return CharacterRenderer{ShowSingleQuotes: true, Replacement: ReplaceNone}
}
