package typing

import "strings"

// TokenKind is the lexical category of a source character.
type TokenKind int

// Token kinds.
const (
	TokenDefault TokenKind = iota
	TokenString
	TokenNumber
	TokenOperator
	TokenBracket
	TokenPunctuation
	TokenComment
	TokenKeyword
	TokenFunction
	TokenSpecial
)

func (k TokenKind) String() string {
	switch k {
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenOperator:
		return "operator"
	case TokenBracket:
		return "bracket"
	case TokenPunctuation:
		return "punctuation"
	case TokenComment:
		return "comment"
	case TokenKeyword:
		return "keyword"
	case TokenFunction:
		return "function"
	case TokenSpecial:
		return "special"
	default:
		return "default"
	}
}

const (
	operatorChars    = "+-*/%=<>!&|"
	bracketChars     = "(){}[]"
	punctuationChars = ",;.:"
)

var keywords = wordSet(
	// JavaScript / TypeScript
	"const", "let", "var", "async", "await", "function", "return", "if", "else",
	"for", "while", "import", "export", "from", "default", "class", "extends",
	"new", "this", "super", "static", "type", "interface", "enum", "as", "typeof",
	"useEffect", "useState", "useRef", "useMemo", "useCallback", "useReducer",
	// Go
	"func", "package", "range", "select", "case", "switch", "go", "defer",
	"chan", "struct", "break", "continue",
)

var knownFunctions = wordSet(
	"map", "filter", "reduce", "forEach", "find", "findIndex", "some", "includes",
	"sort", "RegExp", "every", "fetch", "Promise", "setTimeout", "flat", "flatMap",
	"join", "split", "push", "pop", "shift", "unshift", "splice", "slice",
	"replace", "toLowerCase", "toUpperCase", "trim", "charAt", "charCodeAt",
	"indexOf", "lastIndexOf", "parseInt", "parseFloat", "isNaN", "isFinite",
	"Date", "getTime", "setTime", "clearTimeout", "clearInterval", "setInterval",
	"addEventListener", "querySelector", "getElementById", "console", "Math",
	"JSON", "parse", "stringify", "createContext", "forwardRef", "lazy",
	"createPortal", "setItem", "getItem", "document", "window", "match", "get",
	"post", "put", "delete", "IntersectionObserver", "observer", "navigator",
	"location", "math", "mediaDevices", "json",
	"make", "len", "append", "fmt", "Errorf", "os", "ReadFile", "Done", "Err",
)

var specialWords = wordSet(
	"undefined", "null", "NaN", "error", "event", "log", "err", "warn", "style",
	"video", "audio", "void", "any", "never", "unknown", "object", "boolean",
	"string", "number", "bigint", "symbol", "nil", "byte", "ctx",
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Classify returns the token kind of every character of code. Quote
// characters toggle a string region left to right unless escaped with a
// backslash; "//" starts a comment that runs to the end of the line.
func Classify(code []rune) []TokenKind {
	kinds := make([]TokenKind, len(code))
	inString := false
	inComment := false
	var quote rune
	for i, r := range code {
		if inComment {
			if r == '\n' {
				inComment = false
				continue
			}
			kinds[i] = TokenComment
			continue
		}
		if isQuote(r) && (i == 0 || code[i-1] != '\\') {
			kinds[i] = TokenString
			if !inString {
				inString = true
				quote = r
			} else if r == quote {
				inString = false
			}
			continue
		}
		if inString {
			kinds[i] = TokenString
			continue
		}
		if r == '/' && i+1 < len(code) && code[i+1] == '/' {
			inComment = true
			kinds[i] = TokenComment
			continue
		}
		kinds[i] = classifyRune(code, i)
	}
	return kinds
}

func classifyRune(code []rune, i int) TokenKind {
	r := code[i]
	switch {
	case r >= '0' && r <= '9':
		return TokenNumber
	case strings.ContainsRune(operatorChars, r):
		return TokenOperator
	case strings.ContainsRune(bracketChars, r):
		return TokenBracket
	case strings.ContainsRune(punctuationChars, r):
		return TokenPunctuation
	case isWordRune(r):
		word := wordAt(code, i)
		if _, ok := keywords[word]; ok {
			return TokenKeyword
		}
		if _, ok := knownFunctions[word]; ok {
			return TokenFunction
		}
		if _, ok := specialWords[word]; ok {
			return TokenSpecial
		}
	}
	return TokenDefault
}

func wordAt(code []rune, i int) string {
	start, end := i, i
	for start > 0 && isWordRune(code[start-1]) {
		start--
	}
	for end < len(code) && isWordRune(code[end]) {
		end++
	}
	return string(code[start:end])
}

func isWordRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isQuote(r rune) bool {
	return r == '"' || r == '\'' || r == '`'
}
