// File: internal/services/medicine/coerce.go
package medicine

import (
    "encoding/json"
    "fmt"
    "strconv"
)

// Tolerant JSON field types. The model is instructed to emit an exact
// schema but does not always comply; these types absorb scalar/array and
// type mismatches per field instead of failing the whole unmarshal, so
// the reconciliation pass sees "unset" rather than an error.

// flexString accepts a JSON string or number; anything else leaves it empty.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
    var s string
    if err := json.Unmarshal(data, &s); err == nil {
        *f = flexString(s)
        return nil
    }
    var n float64
    if err := json.Unmarshal(data, &n); err == nil {
        *f = flexString(strconv.FormatFloat(n, 'f', -1, 64))
        return nil
    }
    *f = ""
    return nil
}

// flexBool accepts a JSON boolean; anything else leaves it unset.
type flexBool struct {
    Value bool
    Set   bool
}

func (f *flexBool) UnmarshalJSON(data []byte) error {
    // Unmarshal treats null as a successful no-op; an explicit null must
    // read as unset, not false.
    if string(data) == "null" {
        f.Set = false
        return nil
    }
    var b bool
    if err := json.Unmarshal(data, &b); err == nil {
        f.Value = b
        f.Set = true
        return nil
    }
    f.Set = false
    return nil
}

// flexFloat accepts a JSON number; anything else leaves it unset.
type flexFloat struct {
    Value float64
    Set   bool
}

func (f *flexFloat) UnmarshalJSON(data []byte) error {
    if string(data) == "null" {
        f.Set = false
        return nil
    }
    var n float64
    if err := json.Unmarshal(data, &n); err == nil {
        f.Value = n
        f.Set = true
        return nil
    }
    f.Set = false
    return nil
}

// flexStrings accepts an array (elements stringified), a bare string
// (wrapped in a one-element list), or null/other (nil). This keeps the
// "list fields are always lists" invariant even when the model emits a
// bare scalar.
type flexStrings []string

func (f *flexStrings) UnmarshalJSON(data []byte) error {
    var ss []string
    if err := json.Unmarshal(data, &ss); err == nil {
        *f = ss
        return nil
    }
    var s string
    if err := json.Unmarshal(data, &s); err == nil {
        if s == "" {
            *f = nil
        } else {
            *f = []string{s}
        }
        return nil
    }
    var anys []any
    if err := json.Unmarshal(data, &anys); err == nil {
        out := make([]string, 0, len(anys))
        for _, v := range anys {
            if v == nil {
                continue
            }
            out = append(out, fmt.Sprint(v))
        }
        *f = out
        return nil
    }
    *f = nil
    return nil
}
