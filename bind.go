package toolcheck

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ValidateAndBind validates args against def's parameter schema and, when
// valid, decodes them into out (a pointer to the tool's argument struct,
// matched by json tags). The error wraps ErrValidation and carries every
// validation message, so it can go straight back to the LLM.
func ValidateAndBind(def *Definition, args map[string]any, out any) error {
	if def == nil {
		return ErrToolNotFound
	}
	if args == nil {
		args = map[string]any{}
	}
	if errs := ValidateValue(args, def.Parameters); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Message
		}
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "json",
	})
	if err != nil {
		return fmt.Errorf("build decoder: %w", err)
	}
	if err := dec.Decode(args); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err)
	}
	return nil
}
