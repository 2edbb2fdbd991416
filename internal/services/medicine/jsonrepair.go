// File: internal/services/medicine/jsonrepair.go
package medicine

import "strings"

// ExtractJSONObject pulls the outermost {...} span out of model output
// that may carry leading/trailing prose. Returns the candidate JSON, a
// flag marking whether the text had to be repaired (trimmed down to the
// brace span), and ok=false when no object-shaped span exists at all.
//
// Known limit: the first-`{`/last-`}` scan is fooled by unbalanced braces
// inside string literals. That trade-off is accepted; callers treat a
// later parse failure the same as ok=false.
func ExtractJSONObject(text string) (candidate string, repaired bool, ok bool) {
    s := strings.TrimSpace(text)
    if s == "" {
        return "", false, false
    }

    if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
        return s, false, true
    }

    first := strings.Index(s, "{")
    last := strings.LastIndex(s, "}")
    if first == -1 || last == -1 || last <= first {
        return "", false, false
    }
    return s[first : last+1], true, true
}
