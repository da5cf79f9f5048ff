package apiclient

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Decode converts an untyped JSON value, as returned by Client.Do, into out
// using the json struct tags of the target. Numbers are coerced to the target
// numeric type; keys the target does not know are ignored. A nil raw value
// leaves out untouched.
func Decode(raw any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  out,
	})
	if err != nil {
		return &DecodeError{Target: targetName(out), Err: err}
	}

	if err := decoder.Decode(raw); err != nil {
		return &DecodeError{Target: targetName(out), Err: err}
	}

	return nil
}

// As decodes raw into a new value of type T.
func As[T any](raw any) (T, error) {
	var out T
	err := Decode(raw, &out)
	return out, err
}

func targetName(out any) string {
	return strings.TrimLeft(fmt.Sprintf("%T", out), "*")
}
