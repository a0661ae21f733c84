package util

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrEmptyInt = errors.New("empty integer value")

// FlexInt is an integer that also accepts its decimal string form in JSON,
// so both 3 and "3" decode to 3. The empty string is rejected.
type FlexInt int

func (i *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		return nil
	}

	s := string(b)
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return err
		}
		s = strings.TrimSpace(unquoted)
		if s == "" {
			return ErrEmptyInt
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("cannot decode %s into an integer", b)
	}
	*i = FlexInt(n)
	return nil
}

func (i FlexInt) Int() int {
	return int(i)
}

// IntPtr returns nil for a nil FlexInt pointer.
func IntPtr(i *FlexInt) *int {
	if i == nil {
		return nil
	}
	v := int(*i)
	return &v
}
