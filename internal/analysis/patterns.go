package analysis

// spaceClass matches every rune unicode.IsSpace accepts plus the ASCII
// separator controls 0x1c-0x1f, so heading and version rules agree with
// CountChars on what counts as whitespace.
const spaceClass = `[\s\x{0b}\x{1c}-\x{1f}\x{85}\p{Zs}\x{2028}\x{2029}]`

// digitClass matches any decimal digit, full-width ones included.
const digitClass = `\p{Nd}`

// letterClass is [A-Za-z] under case-insensitive matching. RE2 case folding
// already adds U+017F and U+212A; the dotted and dotless I only reach the
// ASCII range through simple case mapping, so they are listed explicitly.
const letterClass = `[A-Za-z\x{130}\x{131}]`
