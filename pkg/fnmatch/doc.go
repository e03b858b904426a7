// Package fnmatch implements shell-style filename matching.
//
// The pattern syntax is:
//   - * matches any sequence of characters (within one path component when
//     globstar is enabled)
//   - ** as a complete path component matches zero or more components
//     (globstar only)
//   - ? matches exactly one character
//   - [...] matches one character from the set, [!...] one character not in it
//
// Unlike fnmatch(3), backslash is never an escape character: it always stands
// for itself, both inside and outside of character classes. An unterminated
// class is not an error, the opening bracket is then an ordinary character.
//
// Matching is case-insensitive unless WithCaseSensitive is given. Patterns are
// compiled once with New and can be shared between goroutines.
package fnmatch
